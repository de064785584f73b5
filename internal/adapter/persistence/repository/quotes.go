package repository

import (
	"context"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type QuoteRepository struct {
	c collection[entities.QuoteRequest]
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func quoteID(q entities.QuoteRequest) string { return q.ID }

func touchQuote(q *entities.QuoteRequest, now time.Time) { q.UpdatedAt = now }

// List returns the newest requests first.
func (r *QuoteRepository) List(ctx context.Context, f entities.QuoteFilter) ([]entities.QuoteRequest, error) {
	return r.c.list(ctx,
		func(q entities.QuoteRequest) bool {
			return kv.MatchesSearch(f.Search, q.CustomerName, q.CustomerEmail, q.CompanyName, q.ProductInterest) &&
				(f.Status == "" || q.Status == f.Status)
		},
		func(a, b entities.QuoteRequest) bool { return a.CreatedAt.After(b.CreatedAt) },
	)
}

func (r *QuoteRepository) Get(ctx context.Context, id string) (*entities.QuoteRequest, error) {
	return r.c.get(ctx, id)
}

func (r *QuoteRepository) Create(ctx context.Context, patch entities.QuoteRequestPatch) (entities.QuoteRequest, error) {
	now := r.c.repo.now()
	q := entities.QuoteRequest{
		ID:        ident.NewID(now),
		Status:    entities.QuoteStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&q)

	if err := r.c.insert(ctx, q); err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRepository) Update(ctx context.Context, id string, patch entities.QuoteRequestPatch) (*entities.QuoteRequest, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
