package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tierevents/middleware"
	"tierevents/models"
	"tierevents/services"
)

// Me returns the caller's profile, creating it on first sight.
func (h *Handler) Me(c *gin.Context) {
	profile, ok := h.requireProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"tier_label":      profile.Tier.Label(),
		"visible_tiers":   models.VisibleTiers(profile.Tier),
		"upgrade_options": h.plansFor(profile.Tier),
	})
}

// UpgradeOptions lists the paid tiers above the caller's current tier.
func (h *Handler) UpgradeOptions(c *gin.Context) {
	profile, ok := h.requireProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current_tier": profile.Tier,
		"plans":        h.plansFor(profile.Tier),
	})
}

// UpgradeTier moves the caller to a higher tier. There is no payment; the
// membership service simulates checkout.
func (h *Handler) UpgradeTier(c *gin.Context) {
	if !h.Features.UpgradesEnabled {
		respondError(c, services.ErrUpgradesDisabled)
		return
	}

	var req struct {
		Tier string `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	tier, err := models.ParseTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier. Must be one of free, silver, gold, platinum."})
		return
	}

	current, ok := h.requireProfile(c)
	if !ok {
		return
	}

	profile, err := h.Upgrades.UpgradeTier(c.Request.Context(), current.ID, tier)
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Str("tier", string(tier)).Msg("tier upgrade failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upgraded to " + profile.Tier.Label(),
		"profile": profile,
	})
}

func (h *Handler) requireProfile(c *gin.Context) (*models.Profile, bool) {
	identity := middleware.CurrentIdentity(c)
	profile := h.Profiles.EnsureProfile(c.Request.Context(), *identity)
	if profile == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Could not load your membership. Please try again.",
			"retryable": true,
		})
		return nil, false
	}
	return profile, true
}

func (h *Handler) plansFor(t models.Tier) []services.Plan {
	if !h.Features.UpgradesEnabled {
		return []services.Plan{}
	}
	return services.UpgradePlans(t)
}
