package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tierevents/models"
)

func TestListEvents(t *testing.T) {
	c := NewEventCatalog(&memEvents{events: sampleCatalog()})
	events, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e-free", "e-silver", "e-gold", "e-platinum"}, ids(events))
}

func TestListEvents_EmptyIsSuccess(t *testing.T) {
	c := NewEventCatalog(&memEvents{})
	events, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestListEvents_Failure(t *testing.T) {
	c := NewEventCatalog(&memEvents{err: errDown})
	events, err := c.ListEvents(context.Background())
	assert.Nil(t, events)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.True(t, errors.Is(err, errDown))
}

func TestVisibleCatalog(t *testing.T) {
	store := &memEvents{events: sampleCatalog()}
	c := NewEventCatalog(store)

	events, err := c.VisibleCatalog(context.Background(), Member(models.TierGold))
	require.NoError(t, err)
	assert.Equal(t, []string{"e-free", "e-silver", "e-gold"}, ids(events))
	assert.Equal(t, []models.Tier{models.TierFree, models.TierSilver, models.TierGold}, store.tiers)

	events, err = c.VisibleCatalog(context.Background(), Anonymous())
	require.NoError(t, err)
	assert.Equal(t, []string{"e-free"}, ids(events))
	assert.Equal(t, []models.Tier{models.TierFree}, store.tiers)
}

// leakyEvents ignores the tier filter, as a misconfigured store might.
type leakyEvents struct{ memEvents }

func (l *leakyEvents) ListByTiers(ctx context.Context, tiers []models.Tier) ([]models.Event, error) {
	return l.ListAll(ctx)
}

func TestVisibleCatalog_ResolvesEvenIfStoreOverReturns(t *testing.T) {
	c := NewEventCatalog(&leakyEvents{memEvents{events: sampleCatalog()}})
	events, err := c.VisibleCatalog(context.Background(), Member(models.TierSilver))
	require.NoError(t, err)
	assert.Equal(t, []string{"e-free", "e-silver"}, ids(events))
}

func TestVisibleCatalog_Failure(t *testing.T) {
	c := NewEventCatalog(&memEvents{err: errDown})
	_, err := c.VisibleCatalog(context.Background(), Anonymous())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
