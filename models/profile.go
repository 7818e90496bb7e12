package models

import (
	"time"
)

// Identity is what the identity provider tells us about the current session.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Profile is a user's membership record. ID equals the identity provider subject.
// Identity attributes are a snapshot taken at creation and may be stale.
type Profile struct {
	ID        string    `json:"id"`
	Tier      Tier      `json:"tier"`
	Email     *string   `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile builds a free-tier profile from an identity snapshot.
func NewProfile(id Identity, now time.Time) *Profile {
	return &Profile{
		ID:        id.ID,
		Tier:      TierFree,
		Email:     optional(id.Email),
		FirstName: optional(id.FirstName),
		LastName:  optional(id.LastName),
		ImageURL:  optional(id.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
