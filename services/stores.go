package services

import (
	"context"
	"time"

	"tierevents/models"
)

// ProfileStore is the keyed record store for membership profiles.
type ProfileStore interface {
	// Get returns nil, nil when no profile exists.
	Get(ctx context.Context, id string) (*models.Profile, error)
	// InsertOrGet stores p, or returns the already stored record for p.ID.
	// The bool reports whether p was inserted.
	InsertOrGet(ctx context.Context, p *models.Profile) (*models.Profile, bool, error)
	// UpdateTier is a compare-and-set on the current tier; nil, nil when nothing matched.
	UpdateTier(ctx context.Context, id string, from, to models.Tier, at time.Time) (*models.Profile, error)
}

// EventStore is the read-only event catalog.
type EventStore interface {
	ListAll(ctx context.Context) ([]models.Event, error)
	ListByTiers(ctx context.Context, tiers []models.Tier) ([]models.Event, error)
}

// AccountStore holds local identity provider credentials.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
