package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implementa Store sobre uma tabela chave-valor no PostgreSQL.
// As leituras passam por um cache em memória que espelha o último valor
// conhecido de cada chave; escritas bem-sucedidas atualizam o espelho.
type PostgresStore struct {
	db *pgxpool.Pool

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewPostgresStore cria uma nova instância de PostgresStore
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db:    db,
		cache: make(map[string][]byte),
	}
}

// Get implementa Store.Get
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	if value, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return value, nil
	}
	s.mu.RUnlock()

	var value []byte
	err := s.db.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`,
		key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao ler chave %q: %w", key, err)
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, nil
}

// Set implementa Store.Set
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO kv_store (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("erro ao gravar chave %q: %w", key, err)
	}

	// O espelho só é atualizado depois da escrita confirmada
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return nil
}

// Delete implementa Store.Delete
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("erro ao remover chave %q: %w", key, err)
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	return nil
}

// Clear implementa Store.Clear
func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_store`)
	if err != nil {
		return fmt.Errorf("erro ao limpar armazenamento: %w", err)
	}

	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	return nil
}

// FlushCache implementa Store.FlushCache
func (s *PostgresStore) FlushCache() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()
}
