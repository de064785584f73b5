package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

var (
	ErrOrcamentoNotFound       = errors.New("orcamento not found")
	ErrInvalidOrcamentoContact = errors.New("nome and a telefone or email are required")
	ErrInvalidOrcamentoStatus  = errors.New("invalid orcamento status")
	ErrInvalidQuantidade       = errors.New("quantidade must be at least 1")
	ErrInvalidUsuario          = errors.New("usuario requires nome and email")
)

// IOrcamentoUseCase serves the admin panel: simple quotes and settings.
//
// SubmitOrcamento notifies the sales team when settings.notificacoes allows
// it. A failed notification never fails the submission.

type IOrcamentoUseCase interface {
	SubmitOrcamento(ctx context.Context, patch entities.OrcamentoPatch) (entities.Orcamento, error)
	ListOrcamentos(ctx context.Context, filter entities.OrcamentoFilter) ([]entities.Orcamento, error)
	GetOrcamento(ctx context.Context, id string) (entities.Orcamento, error)
	UpdateOrcamento(ctx context.Context, id string, patch entities.OrcamentoPatch) (entities.Orcamento, error)
	DeleteOrcamento(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, patch entities.SettingsPatch) (entities.Settings, error)
}

type OrcamentoUseCase struct {
	repo     interfaces.IOrcamentoRepository
	settings interfaces.ISettingsRepository
	notifier interfaces.INotifier
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

// NewOrcamentoUseCase accepts a nil notifier.
func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository, settings interfaces.ISettingsRepository, notifier interfaces.INotifier) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo, settings: settings, notifier: notifier}
}

func (u *OrcamentoUseCase) SubmitOrcamento(ctx context.Context, patch entities.OrcamentoPatch) (entities.Orcamento, error) {
	if blank(patch.Nome) || (blank(patch.Telefone) && blank(patch.Email)) {
		return entities.Orcamento{}, ErrInvalidOrcamentoContact
	}
	if patch.Quantidade == nil {
		one := 1
		patch.Quantidade = &one
	} else if *patch.Quantidade < 1 {
		return entities.Orcamento{}, ErrInvalidQuantidade
	}
	status := entities.OrcamentoStatusNovo
	patch.Status = &status
	patch.NotasInternas = nil

	o, err := u.repo.Create(ctx, patch)
	if err != nil {
		return entities.Orcamento{}, err
	}
	u.notify(ctx, o)
	return o, nil
}

func (u *OrcamentoUseCase) notify(ctx context.Context, o entities.Orcamento) {
	if u.notifier == nil {
		return
	}
	s, err := u.settings.GetSettings(ctx)
	if err != nil {
		log.Printf("[orcamento][usecase] could not read settings, skipping notification: %v", err)
		return
	}
	if !s.Notificacoes.AvisarNovosOrcamentos {
		return
	}
	if err := u.notifier.NotifyNewOrcamento(ctx, o); err != nil {
		log.Printf("[orcamento][usecase] notification failed id=%s: %v", o.ID, err)
	}
}

func (u *OrcamentoUseCase) ListOrcamentos(ctx context.Context, filter entities.OrcamentoFilter) ([]entities.Orcamento, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidOrcamentoStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *OrcamentoUseCase) GetOrcamento(ctx context.Context, id string) (entities.Orcamento, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.Orcamento{}, ErrInvalidID
	}
	o, err := u.repo.Get(ctx, id)
	return found(o, err, ErrOrcamentoNotFound)
}

func (u *OrcamentoUseCase) UpdateOrcamento(ctx context.Context, id string, patch entities.OrcamentoPatch) (entities.Orcamento, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.Orcamento{}, ErrInvalidID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Orcamento{}, ErrInvalidOrcamentoStatus
	}
	if patch.Quantidade != nil && *patch.Quantidade < 1 {
		return entities.Orcamento{}, ErrInvalidQuantidade
	}
	o, err := u.repo.Update(ctx, id, patch)
	return found(o, err, ErrOrcamentoNotFound)
}

func (u *OrcamentoUseCase) DeleteOrcamento(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.repo.Delete, ErrOrcamentoNotFound)
}

func (u *OrcamentoUseCase) GetSettings(ctx context.Context) (entities.Settings, error) {
	return u.settings.GetSettings(ctx)
}

func (u *OrcamentoUseCase) UpdateSettings(ctx context.Context, patch entities.SettingsPatch) (entities.Settings, error) {
	for _, usr := range patch.Usuarios {
		if strings.TrimSpace(usr.Nome) == "" || strings.TrimSpace(usr.Email) == "" {
			return entities.Settings{}, ErrInvalidUsuario
		}
	}
	return u.settings.UpdateSettings(ctx, patch)
}
