package interfaces

import (
	"context"
	"vitrine_industrial/internal/domain/entities"
)

type IDownloadRepository interface {
	List(ctx context.Context, filter entities.DownloadFilter) ([]entities.DownloadAsset, error)
	Get(ctx context.Context, id string) (*entities.DownloadAsset, error)
	Create(ctx context.Context, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error)
	Update(ctx context.Context, id string, patch entities.DownloadAssetPatch) (*entities.DownloadAsset, error)
	Delete(ctx context.Context, id string) (bool, error)
	RegisterDownload(ctx context.Context, id string) (*entities.DownloadAsset, error)
}

type INewsRepository interface {
	List(ctx context.Context, filter entities.NewsFilter) ([]entities.NewsPost, error)
	Get(ctx context.Context, id string) (*entities.NewsPost, error)
	GetBySlug(ctx context.Context, slug string) (*entities.NewsPost, error)
	Create(ctx context.Context, patch entities.NewsPostPatch) (entities.NewsPost, error)
	Update(ctx context.Context, id string, patch entities.NewsPostPatch) (*entities.NewsPost, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IDistributorRepository lists alphabetically by name, unlike every other
// collection.

type IDistributorRepository interface {
	List(ctx context.Context, filter entities.DistributorFilter) ([]entities.Distributor, error)
	Get(ctx context.Context, id string) (*entities.Distributor, error)
	Create(ctx context.Context, patch entities.DistributorPatch) (entities.Distributor, error)
	Update(ctx context.Context, id string, patch entities.DistributorPatch) (*entities.Distributor, error)
	Delete(ctx context.Context, id string) (bool, error)
}
