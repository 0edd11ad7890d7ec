package kvstore

import (
	"context"
	"sync"
)

// MemoryStore implementa Store inteiramente em memória. É usado nos testes e
// no modo standalone (STORE_BACKEND=memory), em que os dados não sobrevivem
// ao encerramento do processo.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore cria uma nova instância de MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get implementa Store.Get
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// Set implementa Store.Set
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// O chamador pode reutilizar o slice depois da chamada
	buf := make([]byte, len(value))
	copy(buf, value)
	s.data[key] = buf

	return nil
}

// Delete implementa Store.Delete
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Clear implementa Store.Clear
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)
	return nil
}

// FlushCache implementa Store.FlushCache. Sem efeito: o MemoryStore é a
// própria fonte de verdade, não há espelho a descartar.
func (s *MemoryStore) FlushCache() {}
