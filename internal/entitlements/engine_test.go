package entitlements

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed plan catalogue for engine tests
type stubPlanSource struct {
	plans map[string]struct {
		name  string
		quota Quota
	}
}

func newStubPlanSource() *stubPlanSource {
	return &stubPlanSource{plans: map[string]struct {
		name  string
		quota Quota
	}{
		"plan-free": {"Free", Quota{SearchesPerDay: 5, AIGenerations: 3, ExportsPerMonth: 3, ResultsPerCategory: 3}},
		"plan-pro":  {"Pro", Quota{SearchesPerDay: Unlimited, AIGenerations: Unlimited, ExportsPerMonth: Unlimited, ResultsPerCategory: 15}},
	}}
}

func (s *stubPlanSource) PlanQuota(_ context.Context, planID string) (string, Quota, error) {
	p, exists := s.plans[planID]
	if !exists {
		return "", Quota{}, ErrPlanNotFound
	}

	return p.name, p.quota, nil
}

func newTestEngine() (*Engine, *MemoryStore) {
	store := NewMemoryStore()
	return NewEngine(store, newStubPlanSource()), store
}

func TestEngine_TryConsume(t *testing.T) {
	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: 2}))

	ledger, err := engine.TryConsume(context.Background(), "user-1", FeatureSearch)

	require.NoError(t, err)
	assert.Equal(t, 1, ledger.SearchesRemaining)
	assert.Equal(t, 1, ledger.SearchesUsedToday)
}

func TestEngine_TryConsume_Exhausted(t *testing.T) {
	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: 1}))

	_, err := engine.TryConsume(context.Background(), "user-1", FeatureSearch)
	require.NoError(t, err)

	_, err = engine.TryConsume(context.Background(), "user-1", FeatureSearch)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestEngine_TryConsume_UnknownUser(t *testing.T) {
	engine, _ := newTestEngine()

	_, err := engine.TryConsume(context.Background(), "ghost", FeatureSearch)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEngine_TryConsume_UnknownFeature(t *testing.T) {
	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: 5}))

	_, err := engine.TryConsume(context.Background(), "user-1", Feature("time_travel"))
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestEngine_Upgrade_ResetsLedger(t *testing.T) {
	engine, store := newTestEngine()

	ledger := NewLedger(Quota{SearchesPerDay: 5, AIGenerations: 3, ExportsPerMonth: 3})
	require.NoError(t, ledger.Consume(FeatureSearch))
	store.Put("user-1", ledger)

	planName, fresh, err := engine.Upgrade(context.Background(), "user-1", "plan-pro")

	require.NoError(t, err)
	assert.Equal(t, "Pro", planName)
	assert.Equal(t, "Pro", store.Plan("user-1"))
	assert.Equal(t, Unlimited, fresh.SearchesRemaining)
	assert.Zero(t, fresh.SearchesUsedToday, "upgrade resets used-counters")

	stored, err := store.Ledger(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, *fresh, *stored)
}

func TestEngine_Upgrade_UnknownPlan(t *testing.T) {
	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: 5}))

	_, _, err := engine.Upgrade(context.Background(), "user-1", "plan-missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestEngine_Upgrade_UnknownUser(t *testing.T) {
	engine, _ := newTestEngine()

	_, _, err := engine.Upgrade(context.Background(), "ghost", "plan-free")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEngine_Override(t *testing.T) {
	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: 0}))

	searches := 10
	err := engine.Override(context.Background(), "user-1", Override{SearchesRemaining: &searches})
	require.NoError(t, err)

	ledger, err := engine.Ledger(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 10, ledger.SearchesRemaining)
}

func TestEngine_Override_EmptyIsNoop(t *testing.T) {
	engine, _ := newTestEngine()

	// no user seeded; an empty override must not even hit the store
	err := engine.Override(context.Background(), "ghost", Override{})
	assert.NoError(t, err)
}

func TestEngine_Override_UnknownUser(t *testing.T) {
	engine, _ := newTestEngine()

	searches := 10
	err := engine.Override(context.Background(), "ghost", Override{SearchesRemaining: &searches})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEngine_ConcurrentConsume_NeverOversells(t *testing.T) {
	const (
		credits = 7
		workers = 50
	)

	engine, store := newTestEngine()
	store.Put("user-1", NewLedger(Quota{SearchesPerDay: credits}))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		exhausted int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := engine.TryConsume(context.Background(), "user-1", FeatureSearch)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrQuotaExhausted):
				exhausted++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, credits, successes, "exactly the available credits may be granted")
	assert.Equal(t, workers-credits, exhausted)

	ledger, err := store.Ledger(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.SearchesRemaining, "balance must end at zero, never below")
	assert.Equal(t, credits, ledger.SearchesUsedToday)
}
