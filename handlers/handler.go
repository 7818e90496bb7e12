package handlers

import (
	"context"
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"tierevents/config"
	"tierevents/middleware"
	"tierevents/models"
	"tierevents/services"
)

//go:embed templates/*.html
var templateFS embed.FS

type Provisioner interface {
	EnsureProfile(ctx context.Context, identity models.Identity) *models.Profile
}

type Catalog interface {
	VisibleCatalog(ctx context.Context, v services.Viewer) ([]models.Event, error)
}

type Upgrader interface {
	UpgradeTier(ctx context.Context, profileID string, newTier models.Tier) (*models.Profile, error)
}

type PageLoader interface {
	Load(ctx context.Context, identity *models.Identity) services.Snapshot
}

type IdentityProvider interface {
	SignUp(ctx context.Context, in services.SignUpInput) (*models.Account, string, error)
	SignIn(ctx context.Context, email, password string) (*models.Account, string, error)
}

// Session describes the cookie that carries the session token.
type Session struct {
	Cookie string
	MaxAge time.Duration
	Secure bool
}

// Deps are the collaborators a Handler needs. Identity may be nil when the
// built-in identity provider is disabled.
type Deps struct {
	Profiles Provisioner
	Catalog  Catalog
	Upgrades Upgrader
	Pages    PageLoader
	Identity IdentityProvider
	Verifier middleware.TokenVerifier
	Ping     func(ctx context.Context) error
	Features config.Features
	Session  Session
	// Timeout bounds each request's store calls.
	Timeout time.Duration
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	return &Handler{Deps: d}
}

// Register installs templates, middleware and routes on r.
func (h *Handler) Register(r *gin.Engine) {
	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestLogger())
	if h.Timeout > 0 {
		r.Use(middleware.Timeout(h.Timeout))
	}
	r.Use(middleware.Authenticate(h.Verifier, h.Session.Cookie, h.Session.Secure))

	r.GET("/healthz", h.Health)
	r.GET("/", h.ShowEvents)

	if h.Features.LocalIdentityEnabled && h.Identity != nil {
		auth := r.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
		}
	}

	api := r.Group("/api")
	{
		api.GET("/tiers", h.ListTiers)
		api.GET("/events", h.ListEvents)

		me := api.Group("/me", middleware.RequireIdentity())
		{
			me.GET("", h.Me)
			me.GET("/upgrades", h.UpgradeOptions)
			me.POST("/upgrade", h.UpgradeTier)
		}
	}
}

var templateFuncs = template.FuncMap{
	"tierLabel": func(t models.Tier) string { return t.Label() },
	"date":      func(t time.Time) string { return t.Format("Jan 2, 2006") },
}
