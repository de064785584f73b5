package usecase

import (
	"context"
	"errors"
	"testing"

	"vitrine_industrial/internal/adapter/persistence/repository"
	"vitrine_industrial/internal/adapter/persistence/storage"
	"vitrine_industrial/internal/domain/entities"
)

func newContentUseCase() *ContentUseCase {
	repo := repository.New(storage.NewMemoryStorage())
	return NewContentUseCase(repo.Downloads, repo.News, repo.Distributors)
}

func TestContentUseCase_Downloads(t *testing.T) {
	ctx := context.Background()
	uc := newContentUseCase()

	if _, err := uc.CreateDownload(ctx, entities.DownloadAssetPatch{Title: strPtr("Manual")}); !errors.Is(err, ErrInvalidDownload) {
		t.Fatalf("expected ErrInvalidDownload, got %v", err)
	}
	bad := entities.DownloadCategory("VIDEO")
	if _, err := uc.CreateDownload(ctx, entities.DownloadAssetPatch{Title: strPtr("x"), FileURL: strPtr("/x.pdf"), Category: &bad}); !errors.Is(err, ErrInvalidDownloadCategory) {
		t.Fatalf("expected ErrInvalidDownloadCategory, got %v", err)
	}

	d, err := uc.CreateDownload(ctx, entities.DownloadAssetPatch{Title: strPtr("Certificado Inmetro"), FileURL: strPtr("/cert.pdf")})
	if err != nil || d.Category != entities.DownloadCategoryCatalog {
		t.Fatalf("unexpected download %+v err=%v", d, err)
	}
	hit, err := uc.RegisterDownload(ctx, d.ID)
	if err != nil || hit.DownloadCount != 1 {
		t.Fatalf("unexpected hit %+v err=%v", hit, err)
	}
	if _, err := uc.RegisterDownload(ctx, "missing"); !errors.Is(err, ErrDownloadNotFound) {
		t.Fatalf("expected ErrDownloadNotFound, got %v", err)
	}
}

func TestContentUseCase_News(t *testing.T) {
	ctx := context.Background()
	uc := newContentUseCase()

	if _, err := uc.CreateNews(ctx, entities.NewsPostPatch{}); !errors.Is(err, ErrInvalidNewsTitle) {
		t.Fatalf("expected ErrInvalidNewsTitle, got %v", err)
	}
	n, err := uc.CreateNews(ctx, entities.NewsPostPatch{Title: strPtr("Fenatran 2025")})
	if err != nil || n.Slug != "fenatran-2025" {
		t.Fatalf("unexpected post %+v err=%v", n, err)
	}
	if got, err := uc.GetNewsBySlug(ctx, "fenatran-2025"); err != nil || got.ID != n.ID {
		t.Fatalf("unexpected lookup %+v err=%v", got, err)
	}
	if _, err := uc.ListNews(ctx, entities.NewsFilter{Category: "SPORTS"}); !errors.Is(err, ErrInvalidNewsCategory) {
		t.Fatalf("expected ErrInvalidNewsCategory, got %v", err)
	}
	if err := uc.DeleteNews(ctx, n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetNews(ctx, n.ID); !errors.Is(err, ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestContentUseCase_Distributors(t *testing.T) {
	ctx := context.Background()
	uc := newContentUseCase()

	if _, err := uc.CreateDistributor(ctx, entities.DistributorPatch{Name: strPtr("Sem cidade")}); !errors.Is(err, ErrInvalidDistributor) {
		t.Fatalf("expected ErrInvalidDistributor, got %v", err)
	}
	d, err := uc.CreateDistributor(ctx, entities.DistributorPatch{Name: strPtr("Nordeste Tanques"), City: strPtr("Petrolina"), State: strPtr("PE")})
	if err != nil || d.Country != "Brasil" {
		t.Fatalf("unexpected distributor %+v err=%v", d, err)
	}
	updated, err := uc.UpdateDistributor(ctx, d.ID, entities.DistributorPatch{Phone: strPtr("(87) 3861-0000")})
	if err != nil || updated.Phone != "(87) 3861-0000" || updated.City != "Petrolina" {
		t.Fatalf("unexpected update %+v err=%v", updated, err)
	}
	items, _ := uc.ListDistributors(ctx, entities.DistributorFilter{State: "PE"})
	if len(items) != 1 {
		t.Fatalf("expected 1 distributor in PE, got %d", len(items))
	}
}
