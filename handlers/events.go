package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tierevents/middleware"
	"tierevents/models"
	"tierevents/services"
)

// viewer resolves the caller's tier. A profile that cannot be provisioned
// degrades to anonymous visibility rather than failing the request.
func (h *Handler) viewer(c *gin.Context) (services.Viewer, *models.Profile) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		return services.Anonymous(), nil
	}
	profile := h.Profiles.EnsureProfile(c.Request.Context(), *identity)
	if profile == nil {
		return services.Anonymous(), nil
	}
	return services.Member(profile.Tier), profile
}

// ListEvents returns the events the caller may see, earliest first.
func (h *Handler) ListEvents(c *gin.Context) {
	v, profile := h.viewer(c)

	events, err := h.Catalog.VisibleCatalog(c.Request.Context(), v)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Failed to load events. Please try again.",
			"retryable": true,
		})
		return
	}

	var tier *models.Tier
	if profile != nil {
		t := v.EffectiveTier()
		tier = &t
	}
	c.JSON(http.StatusOK, gin.H{
		"tier":   tier,
		"events": events,
	})
}
