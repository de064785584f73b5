package repository

import (
	"context"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type ProductRepository struct {
	c collection[entities.Product]
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func productID(p entities.Product) string { return p.ID }

func touchProduct(p *entities.Product, now time.Time) { p.UpdatedAt = now }

// List filters by search (title, sku, short and long description), status and
// category, most recently updated first.
func (r *ProductRepository) List(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	return r.c.list(ctx,
		func(p entities.Product) bool {
			return kv.MatchesSearch(f.Search, p.Title, p.SKU, p.ShortDescription, p.Description) &&
				(f.Status == "" || p.Status == f.Status) &&
				(f.CategoryID == "" || p.CategoryID == f.CategoryID)
		},
		func(a, b entities.Product) bool { return a.UpdatedAt.After(b.UpdatedAt) },
	)
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*entities.Product, error) {
	return r.c.get(ctx, id)
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	return r.c.find(ctx, func(p entities.Product) bool { return p.Slug == slug })
}

// Create stores a new product. Omitted fields default to empty values, status
// DRAFT and a slug derived from the title.
func (r *ProductRepository) Create(ctx context.Context, patch entities.ProductPatch) (entities.Product, error) {
	now := r.c.repo.now()
	p := entities.Product{
		ID:             ident.NewID(now),
		Status:         entities.ProductStatusDraft,
		Images:         []string{},
		TechnicalSpecs: map[string]string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	patch.Apply(&p)
	if p.Slug == "" {
		p.Slug = ident.Slugify(p.Title)
	}

	if err := r.c.insert(ctx, p); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch entities.ProductPatch) (*entities.Product, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
