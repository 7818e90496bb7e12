package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"tierevents/db"
	"tierevents/models"
)

var errDown = errors.New("connection refused")

// memProfiles is an in-memory ProfileStore. Set a fail* field to inject an error.
type memProfiles struct {
	mu       sync.Mutex
	rows     map[string]models.Profile
	inserts  int
	failGet  error
	failPut  error
	failSet  error
	beforeUp func()
}

func newMemProfiles(ps ...models.Profile) *memProfiles {
	m := &memProfiles{rows: map[string]models.Profile{}}
	for _, p := range ps {
		m.rows[p.ID] = p
	}
	return m
}

func (m *memProfiles) Get(ctx context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProfiles) InsertOrGet(ctx context.Context, p *models.Profile) (*models.Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return nil, false, m.failPut
	}
	if existing, ok := m.rows[p.ID]; ok {
		return &existing, false, nil
	}
	m.rows[p.ID] = *p
	m.inserts++
	out := *p
	return &out, true, nil
}

func (m *memProfiles) UpdateTier(ctx context.Context, id string, from, to models.Tier, at time.Time) (*models.Profile, error) {
	if m.beforeUp != nil {
		m.beforeUp()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return nil, m.failSet
	}
	p, ok := m.rows[id]
	if !ok || p.Tier != from {
		return nil, nil
	}
	p.Tier = to
	p.UpdatedAt = at
	m.rows[id] = p
	return &p, nil
}

func (m *memProfiles) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// memEvents is an in-memory EventStore holding events already in date order.
type memEvents struct {
	events []models.Event
	err    error
	tiers  []models.Tier
}

func (m *memEvents) ListAll(ctx context.Context) ([]models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Event(nil), m.events...), nil
}

func (m *memEvents) ListByTiers(ctx context.Context, tiers []models.Tier) ([]models.Event, error) {
	m.tiers = tiers
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Event{}
	for _, e := range m.events {
		for _, t := range tiers {
			if e.Tier == t {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// memAccounts is an in-memory AccountStore.
type memAccounts struct {
	mu   sync.Mutex
	rows map[string]models.Account
	err  error
}

func (m *memAccounts) Create(ctx context.Context, a *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.rows == nil {
		m.rows = map[string]models.Account{}
	}
	if _, ok := m.rows[a.Email]; ok {
		return db.ErrDuplicate
	}
	a.CreatedAt = time.Now()
	m.rows[a.Email] = *a
	return nil
}

func (m *memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.rows[email]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

var day0 = time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

// sampleCatalog has one event per tier, in date order.
func sampleCatalog() []models.Event {
	return []models.Event{
		{ID: "e-free", Title: "Open House", EventDate: day0, Tier: models.TierFree},
		{ID: "e-silver", Title: "Members Mixer", EventDate: day0.Add(24 * time.Hour), Tier: models.TierSilver},
		{ID: "e-gold", Title: "Gold Dinner", EventDate: day0.Add(48 * time.Hour), Tier: models.TierGold},
		{ID: "e-platinum", Title: "Platinum Retreat", EventDate: day0.Add(72 * time.Hour), Tier: models.TierPlatinum},
	}
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
