package repository

import (
	"context"
	"strings"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type DistributorRepository struct {
	c collection[entities.Distributor]
}

var _ interfaces.IDistributorRepository = (*DistributorRepository)(nil)

func distributorID(d entities.Distributor) string { return d.ID }

func touchDistributor(d *entities.Distributor, now time.Time) { d.UpdatedAt = now }

// List is alphabetical by name: the public map lists resellers A to Z.
func (r *DistributorRepository) List(ctx context.Context, f entities.DistributorFilter) ([]entities.Distributor, error) {
	return r.c.list(ctx,
		func(d entities.Distributor) bool {
			return kv.MatchesSearch(f.Search, d.Name, d.City, d.ContactName) &&
				(f.State == "" || d.State == f.State) &&
				(f.Country == "" || d.Country == f.Country)
		},
		func(a, b entities.Distributor) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	)
}

func (r *DistributorRepository) Get(ctx context.Context, id string) (*entities.Distributor, error) {
	return r.c.get(ctx, id)
}

func (r *DistributorRepository) Create(ctx context.Context, patch entities.DistributorPatch) (entities.Distributor, error) {
	now := r.c.repo.now()
	d := entities.Distributor{
		ID:        ident.NewID(now),
		Country:   "Brasil",
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&d)

	if err := r.c.insert(ctx, d); err != nil {
		return entities.Distributor{}, err
	}
	return d, nil
}

func (r *DistributorRepository) Update(ctx context.Context, id string, patch entities.DistributorPatch) (*entities.Distributor, error) {
	return r.c.modify(ctx, id, patch.Apply)
}

func (r *DistributorRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
