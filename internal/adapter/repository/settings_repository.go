package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-loja/internal/domain/settings"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

// SettingsRepository implementa settings.Repository sobre o armazenamento
// chave-valor (chave "settings")
type SettingsRepository struct {
	store kvstore.Store
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(store kvstore.Store) settings.Repository {
	return &SettingsRepository{store: store}
}

// Get implementa settings.Repository.Get. Enquanto nada foi gravado,
// retorna as configurações padrão.
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	data, err := r.store.Get(ctx, kvstore.KeySettings)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return settings.Default(), nil
		}
		return nil, fmt.Errorf("erro ao carregar configurações: %w", err)
	}

	var s settings.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configurações: %w", err)
	}
	return &s, nil
}

// Save implementa settings.Repository.Save
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("erro ao codificar configurações: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeySettings, data); err != nil {
		return fmt.Errorf("erro ao gravar configurações: %w", err)
	}
	return nil
}
