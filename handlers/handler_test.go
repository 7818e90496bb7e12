package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tierevents/config"
	"tierevents/models"
	"tierevents/services"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeProfiles struct {
	profiles map[string]*models.Profile
	down     bool
}

func (f *fakeProfiles) EnsureProfile(ctx context.Context, id models.Identity) *models.Profile {
	if f.down {
		return nil
	}
	if p, ok := f.profiles[id.ID]; ok {
		return p
	}
	p := &models.Profile{ID: id.ID, Tier: models.TierFree}
	f.profiles[id.ID] = p
	return p
}

type fakeCatalog struct {
	events []models.Event
	err    error
}

func (f *fakeCatalog) VisibleCatalog(ctx context.Context, v services.Viewer) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return services.VisibleEvents(v, f.events), nil
}

func (f *fakeCatalog) ListEvents(ctx context.Context) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeUpgrader struct {
	upgradeFunc func(ctx context.Context, id string, tier models.Tier) (*models.Profile, error)
}

func (f *fakeUpgrader) UpgradeTier(ctx context.Context, id string, tier models.Tier) (*models.Profile, error) {
	return f.upgradeFunc(ctx, id, tier)
}

type fakePages struct {
	profiles *fakeProfiles
	catalog  *fakeCatalog
}

func (f *fakePages) Load(ctx context.Context, identity *models.Identity) services.Snapshot {
	snap := services.Snapshot{Viewer: services.Anonymous()}
	if identity != nil {
		snap.Profile = f.profiles.EnsureProfile(ctx, *identity)
		if snap.Profile != nil {
			snap.Viewer = services.Member(snap.Profile.Tier)
		} else {
			snap.ProfileUnavailable = true
		}
	}
	events, err := f.catalog.ListEvents(ctx)
	snap.CatalogErr = err
	if err == nil {
		snap.Events = services.VisibleEvents(snap.Viewer, events)
	}
	return snap
}

type fakeIdentity struct {
	signUpFunc func(ctx context.Context, in services.SignUpInput) (*models.Account, string, error)
	signInFunc func(ctx context.Context, email, password string) (*models.Account, string, error)
}

func (f *fakeIdentity) SignUp(ctx context.Context, in services.SignUpInput) (*models.Account, string, error) {
	return f.signUpFunc(ctx, in)
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (*models.Account, string, error) {
	return f.signInFunc(ctx, email, password)
}

// tokens are "tok-<id>".
type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (*models.Identity, error) {
	if id, ok := strings.CutPrefix(token, "tok-"); ok && id != "" {
		return &models.Identity{ID: id}, nil
	}
	return nil, errors.New("bad token")
}

// ============================================================================
// Helpers
// ============================================================================

var day0 = time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

func sampleCatalog() []models.Event {
	return []models.Event{
		{ID: "e-free", Title: "Open House", EventDate: day0, Tier: models.TierFree},
		{ID: "e-silver", Title: "Members Mixer", EventDate: day0.Add(24 * time.Hour), Tier: models.TierSilver},
		{ID: "e-gold", Title: "Gold Dinner", EventDate: day0.Add(48 * time.Hour), Tier: models.TierGold},
		{ID: "e-platinum", Title: "Platinum Retreat", EventDate: day0.Add(72 * time.Hour), Tier: models.TierPlatinum},
	}
}

type testEnv struct {
	router   *gin.Engine
	profiles *fakeProfiles
	catalog  *fakeCatalog
	upgrader *fakeUpgrader
	identity *fakeIdentity
}

func newTestEnv(t *testing.T, features config.Features) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		profiles: &fakeProfiles{profiles: map[string]*models.Profile{}},
		catalog:  &fakeCatalog{events: sampleCatalog()},
		upgrader: &fakeUpgrader{},
		identity: &fakeIdentity{},
	}
	h := New(Deps{
		Profiles: env.profiles,
		Catalog:  env.catalog,
		Upgrades: env.upgrader,
		Pages:    &fakePages{profiles: env.profiles, catalog: env.catalog},
		Identity: env.identity,
		Verifier: fakeVerifier{},
		Features: features,
		Session:  Session{Cookie: "session", MaxAge: time.Hour},
		Timeout:  time.Second,
	})
	env.router = gin.New()
	h.Register(env.router)
	return env
}

func allFeatures() config.Features {
	return config.Features{LocalIdentityEnabled: true, UpgradesEnabled: true}
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func eventIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["events"].([]any)
	require.True(t, ok, "events missing")
	out := []string{}
	for _, e := range raw {
		out = append(out, e.(map[string]any)["id"].(string))
	}
	return out
}
