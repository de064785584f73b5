package repository

import (
	"context"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type DownloadRepository struct {
	c collection[entities.DownloadAsset]
}

var _ interfaces.IDownloadRepository = (*DownloadRepository)(nil)

func downloadID(d entities.DownloadAsset) string { return d.ID }

func touchDownload(d *entities.DownloadAsset, now time.Time) { d.UpdatedAt = now }

func (r *DownloadRepository) List(ctx context.Context, f entities.DownloadFilter) ([]entities.DownloadAsset, error) {
	return r.c.list(ctx,
		func(d entities.DownloadAsset) bool {
			return kv.MatchesSearch(f.Search, d.Title, d.Description, d.FileType) &&
				(f.Category == "" || d.Category == f.Category)
		},
		func(a, b entities.DownloadAsset) bool { return a.UpdatedAt.After(b.UpdatedAt) },
	)
}

func (r *DownloadRepository) Get(ctx context.Context, id string) (*entities.DownloadAsset, error) {
	return r.c.get(ctx, id)
}

func (r *DownloadRepository) Create(ctx context.Context, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error) {
	now := r.c.repo.now()
	d := entities.DownloadAsset{
		ID:        ident.NewID(now),
		Category:  entities.DownloadCategoryCatalog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&d)

	if err := r.c.insert(ctx, d); err != nil {
		return entities.DownloadAsset{}, err
	}
	return d, nil
}

func (r *DownloadRepository) Update(ctx context.Context, id string, patch entities.DownloadAssetPatch) (*entities.DownloadAsset, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

func (r *DownloadRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}

// RegisterDownload bumps download_count through the regular update path, so
// updated_at moves as well.
func (r *DownloadRepository) RegisterDownload(ctx context.Context, id string) (*entities.DownloadAsset, error) {
	return r.c.modify(ctx, id, func(d *entities.DownloadAsset) { d.DownloadCount++ })
}
