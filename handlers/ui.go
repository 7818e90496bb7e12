package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tierevents/middleware"
	"tierevents/services"
)

// ShowEvents renders the catalog page. Catalog failures still render, with a retry link.
func (h *Handler) ShowEvents(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	snap := h.Pages.Load(c.Request.Context(), identity)
	if snap.CatalogErr != nil {
		_ = c.Error(snap.CatalogErr)
	}

	var plans []services.Plan
	if snap.Profile != nil {
		plans = h.plansFor(snap.Profile.Tier)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":              "Exclusive Events",
		"SignedIn":           identity != nil,
		"Tier":               snap.Viewer.EffectiveTier(),
		"ProfileUnavailable": snap.ProfileUnavailable,
		"Events":             snap.Events,
		"CatalogError":       snap.CatalogErr != nil,
		"Plans":              plans,
	})
}
