package interfaces

import "context"

// IBackupStore is implemented by each persistence namespace (catalog, painel).
//
//   - ExportData returns the pretty-printed JSON backup ("{}" without storage)
//   - ImportData returns false for malformed input and writes nothing in that case
//   - Reset discards every change and restores the seed data
//   - Init seeds once per fresh namespace

type IBackupStore interface {
	ExportData(ctx context.Context) (string, error)
	ImportData(ctx context.Context, data string) (bool, error)
	Reset(ctx context.Context) error
	Init(ctx context.Context) error
}
