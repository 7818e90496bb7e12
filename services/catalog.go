package services

import (
	"context"
	"fmt"

	"tierevents/models"
)

// EventCatalog reads events from the catalog store.
type EventCatalog struct {
	store EventStore
}

func NewEventCatalog(store EventStore) *EventCatalog {
	return &EventCatalog{store: store}
}

// ListEvents returns the full catalog ordered by event date. An empty catalog is
// an empty slice, not an error; failures wrap ErrStoreUnavailable.
func (c *EventCatalog) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w: %w", ErrStoreUnavailable, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// VisibleCatalog returns the events v may see, filtered by the store query and
// again by VisibleEvents.
func (c *EventCatalog) VisibleCatalog(ctx context.Context, v Viewer) ([]models.Event, error) {
	events, err := c.store.ListByTiers(ctx, v.VisibleTiers())
	if err != nil {
		return nil, fmt.Errorf("list visible events: %w: %w", ErrStoreUnavailable, err)
	}
	return VisibleEvents(v, events), nil
}
