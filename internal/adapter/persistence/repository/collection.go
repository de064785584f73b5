package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/usecase/interfaces"
)

// collection implements the read-modify-write cycle shared by every entity:
// load the whole array, change it, store the whole array back.
type collection[T any] struct {
	repo  *Repository
	name  string
	id    func(T) string
	touch func(*T, time.Time)
}

func newCollection[T any](repo *Repository, name string, id func(T) string, touch func(*T, time.Time)) collection[T] {
	return collection[T]{repo: repo, name: name, id: id, touch: touch}
}

func (c collection[T]) key() string {
	return c.repo.key(c.name)
}

func (c collection[T]) load(ctx context.Context) ([]T, error) {
	if err := c.repo.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	return kv.LoadList[T](ctx, c.repo.store, c.key())
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	return kv.SaveList(ctx, c.repo.store, c.key(), items)
}

func (c collection[T]) list(ctx context.Context, keep func(T) bool, less func(a, b T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func (c collection[T]) find(ctx context.Context, match func(T) bool) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(items[i]) {
			found := items[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	return c.find(ctx, func(it T) bool { return c.id(it) == id })
}

func (c collection[T]) insert(ctx context.Context, item T) error {
	if c.repo.store == nil {
		log.Printf("[repository][%s] create rejected: storage unavailable", c.name)
		return interfaces.ErrStorageUnavailable
	}
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := c.save(ctx, append(items, item)); err != nil {
		return err
	}
	log.Printf("[repository][%s] created id=%s", c.name, c.id(item))
	return nil
}

func (c collection[T]) modify(ctx context.Context, id string, change func(*T)) (*T, error) {
	if c.repo.store == nil {
		log.Printf("[repository][%s] update ignored: storage unavailable id=%s", c.name, id)
		return nil, nil
	}
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	i := kv.IndexOf(items, id, c.id)
	if i < 0 {
		return nil, nil
	}
	change(&items[i])
	c.touch(&items[i], c.repo.now())
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	updated := items[i]
	return &updated, nil
}

func (c collection[T]) remove(ctx context.Context, id string) (bool, error) {
	if c.repo.store == nil {
		return false, nil
	}
	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	i := kv.IndexOf(items, id, c.id)
	if i < 0 {
		return false, nil
	}
	items = append(items[:i], items[i+1:]...)
	if err := c.save(ctx, items); err != nil {
		return false, err
	}
	log.Printf("[repository][%s] deleted id=%s", c.name, id)
	return true, nil
}
