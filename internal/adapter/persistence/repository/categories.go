package repository

import (
	"context"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type CategoryRepository struct {
	c collection[entities.Category]
}

var _ interfaces.ICategoryRepository = (*CategoryRepository)(nil)

func categoryID(c entities.Category) string { return c.ID }

func touchCategory(c *entities.Category, now time.Time) { c.UpdatedAt = now }

func (r *CategoryRepository) List(ctx context.Context, f entities.CategoryFilter) ([]entities.Category, error) {
	return r.c.list(ctx,
		func(c entities.Category) bool { return kv.MatchesSearch(f.Search, c.Name, c.Slug) },
		func(a, b entities.Category) bool { return a.UpdatedAt.After(b.UpdatedAt) },
	)
}

func (r *CategoryRepository) Get(ctx context.Context, id string) (*entities.Category, error) {
	return r.c.get(ctx, id)
}

func (r *CategoryRepository) Create(ctx context.Context, patch entities.CategoryPatch) (entities.Category, error) {
	now := r.c.repo.now()
	c := entities.Category{ID: ident.NewID(now), CreatedAt: now, UpdatedAt: now}
	patch.Apply(&c)
	if c.Slug == "" {
		c.Slug = ident.Slugify(c.Name)
	}

	if err := r.c.insert(ctx, c); err != nil {
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, patch entities.CategoryPatch) (*entities.Category, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

// Delete removes the category only; products keep their category_id.
func (r *CategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
