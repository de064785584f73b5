package repository

import (
	"context"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type NewsRepository struct {
	c collection[entities.NewsPost]
}

var _ interfaces.INewsRepository = (*NewsRepository)(nil)

func newsID(n entities.NewsPost) string { return n.ID }

func touchNews(n *entities.NewsPost, now time.Time) { n.UpdatedAt = now }

// List orders by publication date, drafts by creation date.
func (r *NewsRepository) List(ctx context.Context, f entities.NewsFilter) ([]entities.NewsPost, error) {
	return r.c.list(ctx,
		func(n entities.NewsPost) bool {
			return kv.MatchesSearch(f.Search, n.Title, n.Summary, n.Author) &&
				(f.Category == "" || n.Category == f.Category)
		},
		func(a, b entities.NewsPost) bool { return a.SortTime().After(b.SortTime()) },
	)
}

func (r *NewsRepository) Get(ctx context.Context, id string) (*entities.NewsPost, error) {
	return r.c.get(ctx, id)
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*entities.NewsPost, error) {
	return r.c.find(ctx, func(n entities.NewsPost) bool { return n.Slug == slug })
}

func (r *NewsRepository) Create(ctx context.Context, patch entities.NewsPostPatch) (entities.NewsPost, error) {
	now := r.c.repo.now()
	n := entities.NewsPost{
		ID:        ident.NewID(now),
		Category:  entities.NewsCategoryCompany,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&n)
	if n.Slug == "" {
		n.Slug = ident.Slugify(n.Title)
	}

	if err := r.c.insert(ctx, n); err != nil {
		return entities.NewsPost{}, err
	}
	return n, nil
}

func (r *NewsRepository) Update(ctx context.Context, id string, patch entities.NewsPostPatch) (*entities.NewsPost, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
