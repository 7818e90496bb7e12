package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tierevents/models"
)

const profileColumns = `id, tier, email, first_name, last_name, image_url, created_at, updated_at`

// ProfileStore persists membership profiles in user_profiles.
type ProfileStore struct {
	conn *sql.DB
}

func NewProfileStore(conn *sql.DB) *ProfileStore {
	return &ProfileStore{conn: conn}
}

// Get returns the profile for id, or nil if there is none.
// It returns an error only for database failures, not for missing rows.
func (s *ProfileStore) Get(ctx context.Context, id string) (*models.Profile, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// InsertOrGet stores p unless a profile with the same id already exists, in which
// case the stored row is returned untouched. The no-op DO UPDATE makes RETURNING
// yield the existing row; xmax = 0 only holds for a freshly inserted tuple.
func (s *ProfileStore) InsertOrGet(ctx context.Context, p *models.Profile) (*models.Profile, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		INSERT INTO user_profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING `+profileColumns+`, (xmax = 0) AS inserted
	`, p.ID, p.Tier, p.Email, p.FirstName, p.LastName, p.ImageURL, p.CreatedAt, p.UpdatedAt)

	var out models.Profile
	var inserted bool
	err := row.Scan(&out.ID, &out.Tier, &out.Email, &out.FirstName, &out.LastName, &out.ImageURL,
		&out.CreatedAt, &out.UpdatedAt, &inserted)
	if err != nil {
		return nil, false, err
	}
	return &out, inserted, nil
}

// UpdateTier moves the profile from one tier to another only if it is still at from.
// Returns nil when no row matched (missing profile or a concurrent change).
func (s *ProfileStore) UpdateTier(ctx context.Context, id string, from, to models.Tier, at time.Time) (*models.Profile, error) {
	row := s.conn.QueryRowContext(ctx, `
		UPDATE user_profiles SET tier = $1, updated_at = $2
		WHERE id = $3 AND tier = $4
		RETURNING `+profileColumns, to, at, id, from)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var p models.Profile
	if err := row.Scan(&p.ID, &p.Tier, &p.Email, &p.FirstName, &p.LastName, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
