package usecase

import (
	"context"
	"errors"
	"log"

	"vitrine_industrial/internal/usecase/interfaces"
)

const (
	BackupScopeCatalog = "catalog"
	BackupScopePainel  = "painel"
)

var (
	ErrUnknownBackupScope = errors.New("unknown backup scope")
	ErrInvalidBackup      = errors.New("invalid backup document")
)

type IBackupUseCase interface {
	Export(ctx context.Context, scope string) (string, error)
	Import(ctx context.Context, scope, data string) error
	Reset(ctx context.Context, scope string) error
}

type BackupUseCase struct {
	stores map[string]interfaces.IBackupStore
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(catalog, painel interfaces.IBackupStore) *BackupUseCase {
	return &BackupUseCase{stores: map[string]interfaces.IBackupStore{
		BackupScopeCatalog: catalog,
		BackupScopePainel:  painel,
	}}
}

func (u *BackupUseCase) store(scope string) (interfaces.IBackupStore, error) {
	s, ok := u.stores[scope]
	if !ok || s == nil {
		return nil, ErrUnknownBackupScope
	}
	return s, nil
}

func (u *BackupUseCase) Export(ctx context.Context, scope string) (string, error) {
	s, err := u.store(scope)
	if err != nil {
		return "", err
	}
	return s.ExportData(ctx)
}

func (u *BackupUseCase) Import(ctx context.Context, scope, data string) error {
	s, err := u.store(scope)
	if err != nil {
		return err
	}
	ok, err := s.ImportData(ctx, data)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidBackup
	}
	log.Printf("[backup][usecase] scope=%s imported", scope)
	return nil
}

// Reset restores the seed data of the scope.
func (u *BackupUseCase) Reset(ctx context.Context, scope string) error {
	s, err := u.store(scope)
	if err != nil {
		return err
	}
	if err := s.Reset(ctx); err != nil {
		return err
	}
	log.Printf("[backup][usecase] scope=%s reset to seed", scope)
	return nil
}
