package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/ports"
)

// MockStore is a map-backed ResultStore used to exercise the contract itself.
type MockStore struct {
	mu   sync.Mutex
	data map[string]*domain.Record
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]*domain.Record)}
}

func (m *MockStore) Save(ctx context.Context, key string, record *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = record.Clone()
	return nil
}

func (m *MockStore) Load(ctx context.Context, key string) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.data[key]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return record.Clone(), nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func TestResultStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, NewMockStore())
}
