package services

import (
	"tierevents/models"
)

// Plan is what the upgrade dialog shows for a paid tier.
type Plan struct {
	Tier     models.Tier `json:"tier"`
	Label    string      `json:"label"`
	Price    string      `json:"price"`
	Benefits []string    `json:"benefits"`
}

var plans = map[models.Tier]Plan{
	models.TierSilver: {
		Tier:     models.TierSilver,
		Price:    "$9.99/month",
		Benefits: []string{"Access to Silver tier events", "Priority support", "Monthly newsletters"},
	},
	models.TierGold: {
		Tier:     models.TierGold,
		Price:    "$19.99/month",
		Benefits: []string{"Access to Gold tier events", "VIP support", "Exclusive content", "Early access"},
	},
	models.TierPlatinum: {
		Tier:     models.TierPlatinum,
		Price:    "$39.99/month",
		Benefits: []string{"Access to all events", "Personal account manager", "Custom experiences", "Direct CEO access"},
	},
}

// PlanFor returns the plan for a paid tier. Free has no plan.
func PlanFor(t models.Tier) (Plan, bool) {
	p, ok := plans[t]
	if !ok {
		return Plan{}, false
	}
	p.Label = t.Label()
	return p, true
}

// UpgradePlans lists the plans above current, cheapest first.
func UpgradePlans(current models.Tier) []Plan {
	out := []Plan{}
	for _, t := range models.UpgradeOptions(current) {
		if p, ok := PlanFor(t); ok {
			out = append(out, p)
		}
	}
	return out
}
