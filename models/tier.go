package models

import (
	"fmt"
	"strings"
)

// Tier is a membership level. Tiers are totally ordered by their position in tierOrder.
type Tier string

const (
	TierFree     Tier = "free"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// tierOrder is the single source of truth for ranking; everything else derives from it.
var tierOrder = []Tier{TierFree, TierSilver, TierGold, TierPlatinum}

var tierLabels = map[Tier]string{
	TierFree:     "Free",
	TierSilver:   "Silver",
	TierGold:     "Gold",
	TierPlatinum: "Platinum",
}

// AllTiers returns every tier, lowest first.
func AllTiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// Rank is the tier's position in the order, or -1 for an unknown tier.
func (t Tier) Rank() int {
	for i, o := range tierOrder {
		if o == t {
			return i
		}
	}
	return -1
}

func (t Tier) Valid() bool {
	return t.Rank() >= 0
}

func (t Tier) Label() string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return string(t)
}

// Includes reports whether a viewer at t may see content gated at other.
func (t Tier) Includes(other Tier) bool {
	r, o := t.Rank(), other.Rank()
	return r >= 0 && o >= 0 && o <= r
}

// ParseTier accepts a tier name in any case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

// VisibleTiers returns every tier at or below t. Unknown tiers see nothing.
func VisibleTiers(t Tier) []Tier {
	r := t.Rank()
	if r < 0 {
		return nil
	}
	out := make([]Tier, r+1)
	copy(out, tierOrder[:r+1])
	return out
}

// UpgradeOptions returns the tiers strictly above current.
func UpgradeOptions(current Tier) []Tier {
	r := current.Rank()
	if r < 0 {
		r = 0
	}
	out := make([]Tier, 0, len(tierOrder)-r-1)
	out = append(out, tierOrder[r+1:]...)
	return out
}
