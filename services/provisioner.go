package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tierevents/models"
)

// ProfileProvisioner makes sure every authenticated identity has exactly one profile.
type ProfileProvisioner struct {
	store ProfileStore
	now   func() time.Time
}

func NewProfileProvisioner(store ProfileStore) *ProfileProvisioner {
	return &ProfileProvisioner{store: store, now: time.Now}
}

// EnsureProfile returns the identity's profile, creating a free one on first sight.
// An existing profile is returned as stored. Concurrent first calls for the same id
// converge on one record through the store's insert-or-get.
//
// On store failure it returns nil; callers must then fall back to anonymous visibility.
func (p *ProfileProvisioner) EnsureProfile(ctx context.Context, identity models.Identity) *models.Profile {
	if identity.ID == "" {
		return nil
	}
	logger := log.With().Str("user_id", identity.ID).Logger()

	existing, err := p.store.Get(ctx, identity.ID)
	if err != nil {
		logger.Warn().Err(err).Msg("profile lookup failed")
		return nil
	}
	if existing != nil {
		return existing
	}

	profile, inserted, err := p.store.InsertOrGet(ctx, models.NewProfile(identity, p.now().UTC()))
	if err != nil {
		logger.Warn().Err(err).Msg("profile create failed")
		return nil
	}
	if inserted {
		logger.Info().Msg("profile created")
	} else {
		logger.Debug().Msg("profile created concurrently, using stored record")
	}
	return profile
}
