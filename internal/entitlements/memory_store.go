package entitlements

import (
	"context"
	"sync"
)

// MemoryStore implements LedgerStore with in-memory storage. Atomicity
// comes from a single mutex; it serves tests and store-less tooling,
// the server runs on the postgres-backed user repository.
type MemoryStore struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
	plans   map[string]string
}

// creates an empty in-memory ledger store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledgers: make(map[string]*Ledger),
		plans:   make(map[string]string),
	}
}

// seeds a ledger for a user
func (s *MemoryStore) Put(userID string, l Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgers[userID] = &l
}

// returns a copy of the user's ledger
func (s *MemoryStore) Ledger(_ context.Context, userID string) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, exists := s.ledgers[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	copied := *ledger

	return &copied, nil
}

// debits one credit under the store mutex
func (s *MemoryStore) Consume(_ context.Context, userID string, f Feature) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, exists := s.ledgers[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	if err := ledger.Consume(f); err != nil {
		return nil, err
	}

	copied := *ledger

	return &copied, nil
}

// swaps the plan name and ledger together
func (s *MemoryStore) SetPlan(_ context.Context, userID, planName string, l Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ledgers[userID]; !exists {
		return ErrUserNotFound
	}

	s.plans[userID] = planName
	s.ledgers[userID] = &l

	return nil
}

// applies an admin balance override
func (s *MemoryStore) OverrideBalances(_ context.Context, userID string, o Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, exists := s.ledgers[userID]
	if !exists {
		return ErrUserNotFound
	}

	ledger.Apply(o)

	return nil
}

// returns the plan name recorded by SetPlan
func (s *MemoryStore) Plan(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plans[userID]
}
