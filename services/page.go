package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tierevents/models"
)

// Snapshot is everything one render needs. It is built once per request and not mutated.
type Snapshot struct {
	Viewer  Viewer
	Profile *models.Profile
	// ProfileUnavailable is set when an authenticated viewer's profile could not be
	// loaded and the page fell back to anonymous visibility.
	ProfileUnavailable bool
	Events             []models.Event
	// CatalogErr is non-nil when the catalog could not be listed; the page offers a retry.
	CatalogErr error
}

// PageLoader coordinates provisioning, listing and resolving for one request.
type PageLoader struct {
	provisioner *ProfileProvisioner
	catalog     *EventCatalog
}

func NewPageLoader(provisioner *ProfileProvisioner, catalog *EventCatalog) *PageLoader {
	return &PageLoader{provisioner: provisioner, catalog: catalog}
}

// Load builds the snapshot for identity, which is nil for anonymous visitors.
// Provisioning and listing are independent, so they run concurrently.
func (l *PageLoader) Load(ctx context.Context, identity *models.Identity) Snapshot {
	var (
		profile *models.Profile
		events  []models.Event
		listErr error
	)

	var g errgroup.Group
	if identity != nil {
		g.Go(func() error {
			profile = l.provisioner.EnsureProfile(ctx, *identity)
			return nil
		})
	}
	g.Go(func() error {
		events, listErr = l.catalog.ListEvents(ctx)
		return nil
	})
	_ = g.Wait()

	snap := Snapshot{Profile: profile, CatalogErr: listErr}
	switch {
	case identity == nil:
		snap.Viewer = Anonymous()
	case profile == nil:
		snap.Viewer = Anonymous()
		snap.ProfileUnavailable = true
	default:
		snap.Viewer = Member(profile.Tier)
	}
	if listErr == nil {
		snap.Events = VisibleEvents(snap.Viewer, events)
	}
	return snap
}
