package usecase

import (
	"context"
	"errors"
	"strings"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

var (
	ErrDownloadNotFound        = errors.New("download not found")
	ErrInvalidDownload         = errors.New("download title and file_url are required")
	ErrInvalidDownloadCategory = errors.New("invalid download category")
	ErrNewsNotFound            = errors.New("news post not found")
	ErrInvalidNewsTitle        = errors.New("invalid news title")
	ErrInvalidNewsCategory     = errors.New("invalid news category")
	ErrDistributorNotFound     = errors.New("distributor not found")
	ErrInvalidDistributor      = errors.New("distributor name, city and state are required")
)

// IContentUseCase groups the institutional content of the site: downloads,
// news and distributors.
type IContentUseCase interface {
	ListDownloads(ctx context.Context, filter entities.DownloadFilter) ([]entities.DownloadAsset, error)
	GetDownload(ctx context.Context, id string) (entities.DownloadAsset, error)
	CreateDownload(ctx context.Context, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error)
	UpdateDownload(ctx context.Context, id string, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error)
	DeleteDownload(ctx context.Context, id string) error
	RegisterDownload(ctx context.Context, id string) (entities.DownloadAsset, error)

	ListNews(ctx context.Context, filter entities.NewsFilter) ([]entities.NewsPost, error)
	GetNews(ctx context.Context, id string) (entities.NewsPost, error)
	GetNewsBySlug(ctx context.Context, slug string) (entities.NewsPost, error)
	CreateNews(ctx context.Context, patch entities.NewsPostPatch) (entities.NewsPost, error)
	UpdateNews(ctx context.Context, id string, patch entities.NewsPostPatch) (entities.NewsPost, error)
	DeleteNews(ctx context.Context, id string) error

	ListDistributors(ctx context.Context, filter entities.DistributorFilter) ([]entities.Distributor, error)
	GetDistributor(ctx context.Context, id string) (entities.Distributor, error)
	CreateDistributor(ctx context.Context, patch entities.DistributorPatch) (entities.Distributor, error)
	UpdateDistributor(ctx context.Context, id string, patch entities.DistributorPatch) (entities.Distributor, error)
	DeleteDistributor(ctx context.Context, id string) error
}

type ContentUseCase struct {
	downloads    interfaces.IDownloadRepository
	news         interfaces.INewsRepository
	distributors interfaces.IDistributorRepository
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(downloads interfaces.IDownloadRepository, news interfaces.INewsRepository, distributors interfaces.IDistributorRepository) *ContentUseCase {
	return &ContentUseCase{downloads: downloads, news: news, distributors: distributors}
}

// found turns the repositories' nil-for-missing convention into an error.
func found[T any](v *T, err error, notFound error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, notFound
	}
	return *v, nil
}

func (u *ContentUseCase) ListDownloads(ctx context.Context, filter entities.DownloadFilter) ([]entities.DownloadAsset, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, ErrInvalidDownloadCategory
	}
	return u.downloads.List(ctx, filter)
}

func (u *ContentUseCase) GetDownload(ctx context.Context, id string) (entities.DownloadAsset, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.DownloadAsset{}, ErrInvalidID
	}
	d, err := u.downloads.Get(ctx, id)
	return found(d, err, ErrDownloadNotFound)
}

func (u *ContentUseCase) CreateDownload(ctx context.Context, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error) {
	if blank(patch.Title) || blank(patch.FileURL) {
		return entities.DownloadAsset{}, ErrInvalidDownload
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return entities.DownloadAsset{}, ErrInvalidDownloadCategory
	}
	return u.downloads.Create(ctx, patch)
}

func (u *ContentUseCase) UpdateDownload(ctx context.Context, id string, patch entities.DownloadAssetPatch) (entities.DownloadAsset, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.DownloadAsset{}, ErrInvalidID
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return entities.DownloadAsset{}, ErrInvalidDownloadCategory
	}
	d, err := u.downloads.Update(ctx, id, patch)
	return found(d, err, ErrDownloadNotFound)
}

func (u *ContentUseCase) DeleteDownload(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.downloads.Delete, ErrDownloadNotFound)
}

func (u *ContentUseCase) RegisterDownload(ctx context.Context, id string) (entities.DownloadAsset, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.DownloadAsset{}, ErrInvalidID
	}
	d, err := u.downloads.RegisterDownload(ctx, id)
	return found(d, err, ErrDownloadNotFound)
}

func (u *ContentUseCase) ListNews(ctx context.Context, filter entities.NewsFilter) ([]entities.NewsPost, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, ErrInvalidNewsCategory
	}
	return u.news.List(ctx, filter)
}

func (u *ContentUseCase) GetNews(ctx context.Context, id string) (entities.NewsPost, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.NewsPost{}, ErrInvalidID
	}
	n, err := u.news.Get(ctx, id)
	return found(n, err, ErrNewsNotFound)
}

func (u *ContentUseCase) GetNewsBySlug(ctx context.Context, slug string) (entities.NewsPost, error) {
	if slug = strings.TrimSpace(slug); slug == "" {
		return entities.NewsPost{}, ErrInvalidID
	}
	n, err := u.news.GetBySlug(ctx, slug)
	return found(n, err, ErrNewsNotFound)
}

func (u *ContentUseCase) CreateNews(ctx context.Context, patch entities.NewsPostPatch) (entities.NewsPost, error) {
	if blank(patch.Title) {
		return entities.NewsPost{}, ErrInvalidNewsTitle
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return entities.NewsPost{}, ErrInvalidNewsCategory
	}
	return u.news.Create(ctx, patch)
}

func (u *ContentUseCase) UpdateNews(ctx context.Context, id string, patch entities.NewsPostPatch) (entities.NewsPost, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.NewsPost{}, ErrInvalidID
	}
	if patch.Title != nil && blank(patch.Title) {
		return entities.NewsPost{}, ErrInvalidNewsTitle
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return entities.NewsPost{}, ErrInvalidNewsCategory
	}
	n, err := u.news.Update(ctx, id, patch)
	return found(n, err, ErrNewsNotFound)
}

func (u *ContentUseCase) DeleteNews(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.news.Delete, ErrNewsNotFound)
}

func (u *ContentUseCase) ListDistributors(ctx context.Context, filter entities.DistributorFilter) ([]entities.Distributor, error) {
	return u.distributors.List(ctx, filter)
}

func (u *ContentUseCase) GetDistributor(ctx context.Context, id string) (entities.Distributor, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.Distributor{}, ErrInvalidID
	}
	d, err := u.distributors.Get(ctx, id)
	return found(d, err, ErrDistributorNotFound)
}

func (u *ContentUseCase) CreateDistributor(ctx context.Context, patch entities.DistributorPatch) (entities.Distributor, error) {
	if blank(patch.Name) || blank(patch.City) || blank(patch.State) {
		return entities.Distributor{}, ErrInvalidDistributor
	}
	return u.distributors.Create(ctx, patch)
}

func (u *ContentUseCase) UpdateDistributor(ctx context.Context, id string, patch entities.DistributorPatch) (entities.Distributor, error) {
	if id = strings.TrimSpace(id); id == "" {
		return entities.Distributor{}, ErrInvalidID
	}
	if patch.Name != nil && blank(patch.Name) {
		return entities.Distributor{}, ErrInvalidDistributor
	}
	d, err := u.distributors.Update(ctx, id, patch)
	return found(d, err, ErrDistributorNotFound)
}

func (u *ContentUseCase) DeleteDistributor(ctx context.Context, id string) error {
	return deleteByID(ctx, id, u.distributors.Delete, ErrDistributorNotFound)
}
