package datalayer

import (
	"context"
	"log"
	"sort"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

type OrcamentoRepository struct {
	dl *DataLayer
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoRepository)(nil)

func orcamentoID(o entities.Orcamento) string { return o.ID }

func (r *OrcamentoRepository) load(ctx context.Context) ([]entities.Orcamento, error) {
	if err := r.dl.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	return kv.LoadList[entities.Orcamento](ctx, r.dl.store, r.dl.key(keyOrcamentos))
}

func (r *OrcamentoRepository) save(ctx context.Context, items []entities.Orcamento) error {
	return kv.SaveList(ctx, r.dl.store, r.dl.key(keyOrcamentos), items)
}

// List returns the newest quotes first.
func (r *OrcamentoRepository) List(ctx context.Context, f entities.OrcamentoFilter) ([]entities.Orcamento, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Orcamento, 0, len(items))
	for _, o := range items {
		if !kv.MatchesSearch(f.Search, o.Nome, o.Email, o.Telefone, o.Produto) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CriadoEm.After(out[j].CriadoEm) })
	return out, nil
}

func (r *OrcamentoRepository) Get(ctx context.Context, id string) (*entities.Orcamento, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := kv.IndexOf(items, id, orcamentoID); i >= 0 {
		return &items[i], nil
	}
	return nil, nil
}

func (r *OrcamentoRepository) Create(ctx context.Context, patch entities.OrcamentoPatch) (entities.Orcamento, error) {
	if r.dl.store == nil {
		log.Printf("[datalayer][orcamentos] create rejected: storage unavailable")
		return entities.Orcamento{}, interfaces.ErrStorageUnavailable
	}
	items, err := r.load(ctx)
	if err != nil {
		return entities.Orcamento{}, err
	}

	now := r.dl.now()
	o := entities.Orcamento{
		ID:           ident.NewID(now),
		Status:       entities.OrcamentoStatusNovo,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	patch.Apply(&o)

	if err := r.save(ctx, append(items, o)); err != nil {
		return entities.Orcamento{}, err
	}
	log.Printf("[datalayer][orcamentos] created id=%s", o.ID)
	return o, nil
}

func (r *OrcamentoRepository) Update(ctx context.Context, id string, patch entities.OrcamentoPatch) (*entities.Orcamento, error) {
	if r.dl.store == nil {
		return nil, nil
	}
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := kv.IndexOf(items, id, orcamentoID)
	if i < 0 {
		return nil, nil
	}
	patch.Apply(&items[i])
	items[i].AtualizadoEm = r.dl.now()
	if err := r.save(ctx, items); err != nil {
		return nil, err
	}
	updated := items[i]
	return &updated, nil
}

func (r *OrcamentoRepository) Delete(ctx context.Context, id string) (bool, error) {
	if r.dl.store == nil {
		return false, nil
	}
	items, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	i := kv.IndexOf(items, id, orcamentoID)
	if i < 0 {
		return false, nil
	}
	if err := r.save(ctx, append(items[:i], items[i+1:]...)); err != nil {
		return false, err
	}
	log.Printf("[datalayer][orcamentos] deleted id=%s", id)
	return true, nil
}
