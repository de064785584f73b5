package datalayer

import (
	"context"
	"log"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

type SettingsRepository struct {
	dl *DataLayer
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) GetSettings(ctx context.Context) (entities.Settings, error) {
	if err := r.dl.ensureInitialized(ctx); err != nil {
		return entities.Settings{}, err
	}
	var s entities.Settings
	found, err := kv.LoadValue(ctx, r.dl.store, r.dl.key(keySettings), &s)
	if err != nil {
		return entities.Settings{}, err
	}
	if !found {
		return DefaultSettings(), nil
	}
	if s.Usuarios == nil {
		s.Usuarios = []entities.Usuario{}
	}
	return s, nil
}

// UpdateSettings merges patch at the top level and stores the result. Without
// storage the merged value is returned but not kept.
func (r *SettingsRepository) UpdateSettings(ctx context.Context, patch entities.SettingsPatch) (entities.Settings, error) {
	current, err := r.GetSettings(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	patch.Apply(&current)

	if r.dl.store == nil {
		log.Printf("[datalayer][settings] update not persisted: storage unavailable")
		return current, nil
	}
	if err := kv.SaveValue(ctx, r.dl.store, r.dl.key(keySettings), current); err != nil {
		return entities.Settings{}, err
	}
	return current, nil
}
