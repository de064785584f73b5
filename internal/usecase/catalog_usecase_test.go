package usecase

import (
	"context"
	"errors"
	"testing"

	"vitrine_industrial/internal/adapter/persistence/repository"
	"vitrine_industrial/internal/adapter/persistence/storage"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

func newCatalogUseCase() *CatalogUseCase {
	repo := repository.New(storage.NewMemoryStorage())
	return NewCatalogUseCase(repo.Products, repo.Categories)
}

func TestCatalogUseCase_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires title", func(t *testing.T) {
		uc := newCatalogUseCase()
		if _, err := uc.CreateProduct(ctx, entities.ProductPatch{Title: strPtr("  ")}); !errors.Is(err, ErrInvalidProductTitle) {
			t.Fatalf("expected ErrInvalidProductTitle, got %v", err)
		}
	})

	t.Run("create rejects bad status and price", func(t *testing.T) {
		uc := newCatalogUseCase()
		bad := entities.ProductStatus("ARCHIVED")
		if _, err := uc.CreateProduct(ctx, entities.ProductPatch{Title: strPtr("Tanque"), Status: &bad}); !errors.Is(err, ErrInvalidProductStatus) {
			t.Fatalf("expected ErrInvalidProductStatus, got %v", err)
		}
		neg := -1.0
		if _, err := uc.CreateProduct(ctx, entities.ProductPatch{Title: strPtr("Tanque"), Price: &neg}); !errors.Is(err, ErrInvalidProductValues) {
			t.Fatalf("expected ErrInvalidProductValues, got %v", err)
		}
	})

	t.Run("create then fetch by id and slug", func(t *testing.T) {
		uc := newCatalogUseCase()
		p, err := uc.CreateProduct(ctx, entities.ProductPatch{Title: strPtr("Bomba Pneumática")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, err := uc.GetProduct(ctx, " "+p.ID+" "); err != nil || got.ID != p.ID {
			t.Fatalf("unexpected get %+v err=%v", got, err)
		}
		if got, err := uc.GetProductBySlug(ctx, "bomba-pneumatica"); err != nil || got.ID != p.ID {
			t.Fatalf("unexpected get by slug %+v err=%v", got, err)
		}
	})

	t.Run("not found paths", func(t *testing.T) {
		uc := newCatalogUseCase()
		if _, err := uc.GetProduct(ctx, "missing"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if _, err := uc.UpdateProduct(ctx, "missing", entities.ProductPatch{}); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if err := uc.DeleteProduct(ctx, "missing"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if err := uc.DeleteProduct(ctx, ""); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		uc := newCatalogUseCase()
		if _, err := uc.ListProducts(ctx, entities.ProductFilter{Status: "OLD"}); !errors.Is(err, ErrInvalidProductStatus) {
			t.Fatalf("expected ErrInvalidProductStatus, got %v", err)
		}
	})

	t.Run("unavailable storage", func(t *testing.T) {
		repo := repository.New(nil)
		uc := NewCatalogUseCase(repo.Products, repo.Categories)
		if _, err := uc.CreateProduct(ctx, entities.ProductPatch{Title: strPtr("x")}); !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestCatalogUseCase_Categories(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUseCase()

	if _, err := uc.CreateCategory(ctx, entities.CategoryPatch{}); !errors.Is(err, ErrInvalidCategoryName) {
		t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
	}
	c, err := uc.CreateCategory(ctx, entities.CategoryPatch{Name: strPtr("Filtros")})
	if err != nil || c.Slug != "filtros" {
		t.Fatalf("unexpected category %+v err=%v", c, err)
	}
	renamed, err := uc.UpdateCategory(ctx, c.ID, entities.CategoryPatch{Name: strPtr("Filtros e Elementos")})
	if err != nil || renamed.Name != "Filtros e Elementos" || renamed.Slug != "filtros" {
		t.Fatalf("unexpected update %+v err=%v", renamed, err)
	}
	if err := uc.DeleteCategory(ctx, c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetCategory(ctx, c.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
