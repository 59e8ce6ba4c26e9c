package entitlements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedger_CopiesQuotas(t *testing.T) {
	q := Quota{
		SearchesPerDay:     5,
		AIGenerations:      3,
		ExportsPerMonth:    3,
		ResultsPerCategory: 3,
	}

	l := NewLedger(q)

	assert.Equal(t, 5, l.SearchesRemaining)
	assert.Equal(t, 3, l.AIGenerationsRemaining)
	assert.Equal(t, 3, l.ExportsRemaining)
	assert.Zero(t, l.SearchesUsedToday)
	assert.Zero(t, l.AIGenerationsUsedToday)
	assert.Zero(t, l.ExportsUsedThisMonth)
	assert.False(t, l.LastResetDate.IsZero())
}

func TestLedger_ConsumeDecrements(t *testing.T) {
	l := NewLedger(Quota{SearchesPerDay: 2, AIGenerations: 1, ExportsPerMonth: 1})

	require.NoError(t, l.Consume(FeatureSearch))

	assert.Equal(t, 1, l.SearchesRemaining)
	assert.Equal(t, 1, l.SearchesUsedToday)

	// other balances untouched
	assert.Equal(t, 1, l.AIGenerationsRemaining)
	assert.Equal(t, 1, l.ExportsRemaining)
}

func TestLedger_ConsumeToExhaustion(t *testing.T) {
	l := NewLedger(Quota{SearchesPerDay: 2})

	require.NoError(t, l.Consume(FeatureSearch))
	require.NoError(t, l.Consume(FeatureSearch))

	err := l.Consume(FeatureSearch)
	assert.ErrorIs(t, err, ErrQuotaExhausted)

	// a failed consume mutates nothing
	assert.Equal(t, 0, l.SearchesRemaining)
	assert.Equal(t, 2, l.SearchesUsedToday)
}

func TestLedger_UnlimitedNeverDecrements(t *testing.T) {
	l := NewLedger(Quota{SearchesPerDay: Unlimited})

	for i := 0; i < 100; i++ {
		require.NoError(t, l.Consume(FeatureSearch))
	}

	assert.Equal(t, Unlimited, l.SearchesRemaining, "sentinel must survive consumption")
	assert.Equal(t, 100, l.SearchesUsedToday, "used-counter still tracks unlimited usage")
}

func TestLedger_ConsumeUnknownFeature(t *testing.T) {
	l := NewLedger(Quota{SearchesPerDay: 5})

	err := l.Consume(Feature("teleportation"))
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestLedger_ConsumeEachFeature(t *testing.T) {
	testCases := []struct {
		feature Feature
	}{
		{FeatureSearch},
		{FeatureAIGeneration},
		{FeatureExport},
	}

	for _, tc := range testCases {
		l := NewLedger(Quota{SearchesPerDay: 1, AIGenerations: 1, ExportsPerMonth: 1})

		require.NoError(t, l.Consume(tc.feature), "feature %s", tc.feature)
		assert.Equal(t, 0, l.Remaining(tc.feature), "feature %s", tc.feature)
		assert.Equal(t, 1, l.Used(tc.feature), "feature %s", tc.feature)

		assert.ErrorIs(t, l.Consume(tc.feature), ErrQuotaExhausted, "feature %s", tc.feature)
	}
}

func TestLedger_ApplyOverride(t *testing.T) {
	l := NewLedger(Quota{SearchesPerDay: 5, AIGenerations: 3, ExportsPerMonth: 3})
	require.NoError(t, l.Consume(FeatureSearch))

	searches := 100
	exports := Unlimited

	l.Apply(Override{
		SearchesRemaining: &searches,
		ExportsRemaining:  &exports,
	})

	assert.Equal(t, 100, l.SearchesRemaining)
	assert.Equal(t, Unlimited, l.ExportsRemaining)

	// unset fields and used-counters stay put
	assert.Equal(t, 3, l.AIGenerationsRemaining)
	assert.Equal(t, 1, l.SearchesUsedToday)
}

func TestOverride_Empty(t *testing.T) {
	assert.True(t, Override{}.Empty())

	n := 5
	assert.False(t, Override{SearchesRemaining: &n}.Empty())
	assert.False(t, Override{AIGenerationsRemaining: &n}.Empty())
	assert.False(t, Override{ExportsRemaining: &n}.Empty())
}

func TestFeature_Valid(t *testing.T) {
	assert.True(t, FeatureSearch.Valid())
	assert.True(t, FeatureAIGeneration.Valid())
	assert.True(t, FeatureExport.Valid())
	assert.False(t, Feature("").Valid())
	assert.False(t, Feature("Search").Valid())
}
