package sheets

import (
	"context"
	"sync"

	"github.com/grosz-dev/grosz/internal/model"
)

// MockRepository is an in-memory implementation of service.LedgerRepository
// for tests.
type MockRepository struct {
	LoadFunc    func(ctx context.Context) ([]model.Transaction, error)
	SaveAllFunc func(ctx context.Context, ledger []model.Transaction) error
	AppendFunc  func(ctx context.Context, txn model.Transaction) error

	Ledger       []model.Transaction
	SaveAllCalls int
	AppendCalls  int
	LastSaved    []model.Transaction
	LastAppended *model.Transaction
	mu           sync.Mutex
}

// NewMockRepository creates a mock seeded with an initial ledger.
func NewMockRepository(ledger []model.Transaction) *MockRepository {
	return &MockRepository{Ledger: ledger}
}

// Load implements service.LedgerRepository.
func (m *MockRepository) Load(ctx context.Context) ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}

	out := make([]model.Transaction, len(m.Ledger))
	copy(out, m.Ledger)
	return out, nil
}

// SaveAll implements service.LedgerRepository.
func (m *MockRepository) SaveAll(ctx context.Context, ledger []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveAllCalls++
	if m.SaveAllFunc != nil {
		if err := m.SaveAllFunc(ctx, ledger); err != nil {
			return err
		}
	}

	m.LastSaved = make([]model.Transaction, len(ledger))
	copy(m.LastSaved, ledger)
	m.Ledger = m.LastSaved
	return nil
}

// Append implements service.LedgerRepository.
func (m *MockRepository) Append(ctx context.Context, txn model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCalls++
	if m.AppendFunc != nil {
		if err := m.AppendFunc(ctx, txn); err != nil {
			return err
		}
	}

	m.LastAppended = &txn
	m.Ledger = append(m.Ledger, txn)
	return nil
}
