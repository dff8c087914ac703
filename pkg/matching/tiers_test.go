package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		want       Tier
	}{
		{100, TierReadyNow},
		{99.99, TierAlmostThere},
		{70, TierAlmostThere},
		{69.99, TierWorthATrip},
		{40, TierWorthATrip},
		{39.99, TierNeedsWork},
		{0, TierNeedsWork},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, TierFor(testCase.percentage), "percentage %v", testCase.percentage)
	}
}

func TestClassify_EachMatchInExactlyOneTier(t *testing.T) {
	percentages := []float64{100, 85, 70, 66.67, 40, 39.99, 20, 0}
	matches := make([]RecipeMatch, 0, len(percentages))
	for _, pct := range percentages {
		matches = append(matches, RecipeMatch{MatchPercentage: pct})
	}

	tiers := Classify(matches)

	total := len(tiers.ReadyNow) + len(tiers.AlmostThere) + len(tiers.WorthATrip) + len(tiers.NeedsWork)
	assert.Equal(t, len(matches), total)

	require.Len(t, tiers.ReadyNow, 1)
	require.Len(t, tiers.AlmostThere, 2)
	require.Len(t, tiers.WorthATrip, 2)
	require.Len(t, tiers.NeedsWork, 3)

	assert.Equal(t, float64(85), tiers.AlmostThere[0].MatchPercentage)
	assert.Equal(t, float64(70), tiers.AlmostThere[1].MatchPercentage)
	assert.Equal(t, float64(40), tiers.WorthATrip[1].MatchPercentage)
}

func TestTiers_HasStrongMatches(t *testing.T) {
	weak := Classify([]RecipeMatch{{MatchPercentage: 10}, {MatchPercentage: 39}})
	assert.False(t, weak.HasStrongMatches())
	assert.Len(t, weak.NeedsWork, 2)

	empty := Classify(nil)
	assert.False(t, empty.HasStrongMatches())
	assert.NotNil(t, empty.ReadyNow)

	strong := Classify([]RecipeMatch{{MatchPercentage: 40}})
	assert.True(t, strong.HasStrongMatches())
}
