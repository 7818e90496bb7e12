package services

import (
	"tierevents/models"
)

// Viewer is who is looking at the catalog. An authenticated viewer with an empty
// or unrecognised Tier is treated as free.
type Viewer struct {
	Authenticated bool
	Tier          models.Tier
}

func Anonymous() Viewer {
	return Viewer{}
}

func Member(t models.Tier) Viewer {
	return Viewer{Authenticated: true, Tier: t}
}

// VisibleTiers is the set of event tiers this viewer may see.
// Anonymous viewers only ever see free events, whatever the tier order says.
func (v Viewer) VisibleTiers() []models.Tier {
	if !v.Authenticated {
		return []models.Tier{models.TierFree}
	}
	if !v.Tier.Valid() {
		return models.VisibleTiers(models.TierFree)
	}
	return models.VisibleTiers(v.Tier)
}

// EffectiveTier is the tier used for display; unknown tiers read as free.
func (v Viewer) EffectiveTier() models.Tier {
	if v.Authenticated && v.Tier.Valid() {
		return v.Tier
	}
	return models.TierFree
}

// VisibleEvents returns the events v may see, in their original order.
// It does no I/O and never modifies events.
func VisibleEvents(v Viewer, events []models.Event) []models.Event {
	tier := v.EffectiveTier()

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if tier.Includes(e.Tier) {
			out = append(out, e)
		}
	}
	return out
}
