package interfaces

import (
	"context"
	"vitrine_industrial/internal/domain/entities"
)

// IOrcamentoRepository abstracts the admin panel quote collection.

type IOrcamentoRepository interface {
	List(ctx context.Context, filter entities.OrcamentoFilter) ([]entities.Orcamento, error)
	Get(ctx context.Context, id string) (*entities.Orcamento, error)
	Create(ctx context.Context, patch entities.OrcamentoPatch) (entities.Orcamento, error)
	Update(ctx context.Context, id string, patch entities.OrcamentoPatch) (*entities.Orcamento, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ISettingsRepository abstracts the settings singleton. GetSettings always
// returns a value, falling back to the built-in defaults.

type ISettingsRepository interface {
	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, patch entities.SettingsPatch) (entities.Settings, error)
}
