package kvstore

import (
	"context"
	"errors"
)

// Chaves reservadas do armazenamento de dados do PDV
const (
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyCustomers = "customers"
	KeySettings  = "settings"
	KeyOperators = "operators"
)

var (
	// ErrKeyNotFound é retornado quando a chave não existe no armazenamento
	ErrKeyNotFound = errors.New("chave não encontrada no armazenamento")
)

// Store define a interface do armazenamento chave-valor do PDV.
// Cada chave guarda um documento JSON completo (uma coleção ou um registro
// singleton). As implementações mantêm um cache de leitura por chave que é
// invalidado sempre que uma escrita é confirmada.
type Store interface {
	// Get retorna o valor associado à chave ou ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set grava o valor associado à chave
	Set(ctx context.Context, key string, value []byte) error

	// Delete remove a chave do armazenamento
	Delete(ctx context.Context, key string) error

	// Clear remove todas as chaves do armazenamento
	Clear(ctx context.Context) error

	// FlushCache descarta o cache de leitura por completo
	FlushCache()
}
