package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// Version identifica o formato do arquivo de backup
const Version = "1.0"

var (
	// ErrInvalidBackup é retornado quando o arquivo de backup não contém
	// as quatro coleções obrigatórias
	ErrInvalidBackup = errors.New("backup inválido: produtos, vendas, clientes e configurações são obrigatórios")
)

// Document é o arquivo de backup completo da loja. As coleções são
// transportadas como JSON bruto, exatamente como gravadas no armazenamento,
// para que exportar e importar reproduza os dados byte a byte.
type Document struct {
	Products   json.RawMessage `json:"products"`
	Sales      json.RawMessage `json:"sales"`
	Customers  json.RawMessage `json:"customers"`
	Settings   json.RawMessage `json:"settings"`
	ExportDate time.Time       `json:"exportDate"`
	Version    string          `json:"version"`
}

// Service exporta e importa o conteúdo completo do armazenamento
type Service struct {
	store  kvstore.Store
	logger logger.Logger
}

// NewService cria uma nova instância do serviço de backup
func NewService(store kvstore.Store, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Export monta o documento de backup com o conteúdo atual das quatro
// coleções. Chaves nunca gravadas entram como coleções vazias.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	products, err := s.read(ctx, kvstore.KeyProducts, []byte("[]"))
	if err != nil {
		return nil, err
	}
	sales, err := s.read(ctx, kvstore.KeySales, []byte("[]"))
	if err != nil {
		return nil, err
	}
	customers, err := s.read(ctx, kvstore.KeyCustomers, []byte("[]"))
	if err != nil {
		return nil, err
	}
	settings, err := s.read(ctx, kvstore.KeySettings, []byte("{}"))
	if err != nil {
		return nil, err
	}

	s.logger.Info("backup exportado",
		"products", len(products), "sales", len(sales), "customers", len(customers))

	return &Document{
		Products:   products,
		Sales:      sales,
		Customers:  customers,
		Settings:   settings,
		ExportDate: time.Now(),
		Version:    Version,
	}, nil
}

func (s *Service) read(ctx context.Context, key string, empty []byte) (json.RawMessage, error) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return empty, nil
		}
		return nil, fmt.Errorf("erro ao ler %s: %w", key, err)
	}
	return value, nil
}

// missing reporta se a coleção está ausente do documento. Um literal
// "null" conta como ausente para não gravar null no armazenamento.
func missing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Import sobrescreve as quatro coleções com o conteúdo do documento.
// A validação é tudo ou nada: se qualquer coleção estiver ausente,
// nenhuma chave é gravada e ErrInvalidBackup é retornado.
func (s *Service) Import(ctx context.Context, doc *Document) error {
	if missing(doc.Products) || missing(doc.Sales) ||
		missing(doc.Customers) || missing(doc.Settings) {
		return ErrInvalidBackup
	}

	entries := []struct {
		key   string
		value json.RawMessage
	}{
		{kvstore.KeyProducts, doc.Products},
		{kvstore.KeySales, doc.Sales},
		{kvstore.KeyCustomers, doc.Customers},
		{kvstore.KeySettings, doc.Settings},
	}

	for _, entry := range entries {
		if err := s.store.Set(ctx, entry.key, entry.value); err != nil {
			return fmt.Errorf("erro ao importar %s: %w", entry.key, err)
		}
	}

	s.store.FlushCache()
	s.logger.Info("backup importado", "version", doc.Version)
	return nil
}

// ImportJSON decodifica e importa um arquivo de backup serializado
func (s *Service) ImportJSON(ctx context.Context, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return s.Import(ctx, &doc)
}
