package matching

type (
	Tier string

	Tiers struct {
		ReadyNow    []RecipeMatch `json:"ready_now"`
		AlmostThere []RecipeMatch `json:"almost_there"`
		WorthATrip  []RecipeMatch `json:"worth_a_trip"`
		NeedsWork   []RecipeMatch `json:"needs_work"`
	}
)

const (
	TierReadyNow    Tier = "ready_now"
	TierAlmostThere Tier = "almost_there"
	TierWorthATrip  Tier = "worth_a_trip"
	TierNeedsWork   Tier = "needs_work"

	almostThereFloor = 70
	worthATripFloor  = 40
)

// TierFor places a match percentage in its band. Bands are half-open:
// [70,100) is almost there, [40,70) worth a trip, anything below 40 needs work.
func TierFor(matchPercentage float64) Tier {
	switch {
	case matchPercentage == 100:
		return TierReadyNow
	case matchPercentage >= almostThereFloor:
		return TierAlmostThere
	case matchPercentage >= worthATripFloor:
		return TierWorthATrip
	default:
		return TierNeedsWork
	}
}

// Classify partitions matches into tiers, keeping their relative order.
func Classify(matches []RecipeMatch) Tiers {
	tiers := Tiers{
		ReadyNow:    []RecipeMatch{},
		AlmostThere: []RecipeMatch{},
		WorthATrip:  []RecipeMatch{},
		NeedsWork:   []RecipeMatch{},
	}

	for _, match := range matches {
		switch TierFor(match.MatchPercentage) {
		case TierReadyNow:
			tiers.ReadyNow = append(tiers.ReadyNow, match)
		case TierAlmostThere:
			tiers.AlmostThere = append(tiers.AlmostThere, match)
		case TierWorthATrip:
			tiers.WorthATrip = append(tiers.WorthATrip, match)
		default:
			tiers.NeedsWork = append(tiers.NeedsWork, match)
		}
	}

	return tiers
}

// HasStrongMatches is false when nothing reaches the worth-a-trip band.
func (t Tiers) HasStrongMatches() bool {
	return len(t.ReadyNow) > 0 || len(t.AlmostThere) > 0 || len(t.WorthATrip) > 0
}
