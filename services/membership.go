package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tierevents/models"
)

// MembershipService applies tier changes to profiles.
type MembershipService struct {
	store ProfileStore
	now   func() time.Time
	// delay stands in for checkout; no payment is taken.
	delay time.Duration
}

func NewMembershipService(store ProfileStore, checkoutDelay time.Duration) *MembershipService {
	return &MembershipService{store: store, now: time.Now, delay: checkoutDelay}
}

// UpgradeTier moves the profile to newTier, which must be strictly higher than its
// current tier. The returned profile is the persisted one; on any error the stored
// tier is left as it was.
func (s *MembershipService) UpgradeTier(ctx context.Context, profileID string, newTier models.Tier) (*models.Profile, error) {
	if !newTier.Valid() {
		return nil, ErrInvalidTier
	}

	current, err := s.store.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w: %w", ErrStoreUnavailable, err)
	}
	if current == nil {
		return nil, ErrProfileNotFound
	}
	if newTier.Rank() <= Member(current.Tier).EffectiveTier().Rank() {
		return nil, ErrTierNotHigher
	}

	if err := s.checkout(ctx); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateTier(ctx, profileID, current.Tier, newTier, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update tier: %w: %w", ErrStoreUnavailable, err)
	}
	if updated == nil {
		return nil, ErrTierChanged
	}

	log.Info().
		Str("user_id", profileID).
		Str("from", string(current.Tier)).
		Str("to", string(updated.Tier)).
		Msg("tier upgraded")
	return updated, nil
}

func (s *MembershipService) checkout(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
