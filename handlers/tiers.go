package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tierevents/models"
)

type tierInfo struct {
	Tier    models.Tier   `json:"tier"`
	Label   string        `json:"label"`
	Rank    int           `json:"rank"`
	Visible []models.Tier `json:"visible_tiers"`
}

func (h *Handler) ListTiers(c *gin.Context) {
	tiers := []tierInfo{}
	for _, t := range models.AllTiers() {
		tiers = append(tiers, tierInfo{Tier: t, Label: t.Label(), Rank: t.Rank(), Visible: models.VisibleTiers(t)})
	}
	c.JSON(http.StatusOK, gin.H{"tiers": tiers})
}
