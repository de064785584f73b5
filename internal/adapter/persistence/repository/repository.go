package repository

import (
	"context"
	"log"
	"sync/atomic"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

const (
	DefaultNamespace = "catalogo"

	collectionProducts     = "products"
	collectionQuotes       = "quotes"
	collectionDownloads    = "downloads"
	collectionNews         = "news"
	collectionDistributors = "distributors"
	collectionCategories   = "categories"
	initializedMarker      = "initialized"
)

// Repository is the catalog façade over the storage substrate: products,
// quotes, downloads, news, distributors and categories under one namespace.
//
// Storage layout:
//   - "<ns>:<collection>" holds the JSON array of each collection
//   - "<ns>:initialized" is the seeding marker, presence-checked only
//
// Every public operation first runs ensureInitialized, so the seed is written
// once per fresh namespace and never over existing data.
type Repository struct {
	store     interfaces.IStorage
	namespace string
	now       ident.Clock

	initialized atomic.Bool

	Products     *ProductRepository
	Quotes       *QuoteRepository
	Downloads    *DownloadRepository
	News         *NewsRepository
	Distributors *DistributorRepository
	Categories   *CategoryRepository
}

var _ interfaces.IBackupStore = (*Repository)(nil)

type Option func(*Repository)

func WithNamespace(ns string) Option {
	return func(r *Repository) {
		if ns != "" {
			r.namespace = ns
		}
	}
}

func WithClock(clock ident.Clock) Option {
	return func(r *Repository) {
		if clock != nil {
			r.now = clock
		}
	}
}

// New builds the façade. A nil store is accepted: reads return empty data and
// writes follow each operation's unavailable-storage contract.
func New(store interfaces.IStorage, opts ...Option) *Repository {
	r := &Repository{store: store, namespace: DefaultNamespace, now: ident.Now}
	for _, opt := range opts {
		opt(r)
	}

	r.Products = &ProductRepository{c: newCollection(r, collectionProducts, productID, touchProduct)}
	r.Quotes = &QuoteRepository{c: newCollection(r, collectionQuotes, quoteID, touchQuote)}
	r.Downloads = &DownloadRepository{c: newCollection(r, collectionDownloads, downloadID, touchDownload)}
	r.News = &NewsRepository{c: newCollection(r, collectionNews, newsID, touchNews)}
	r.Distributors = &DistributorRepository{c: newCollection(r, collectionDistributors, distributorID, touchDistributor)}
	r.Categories = &CategoryRepository{c: newCollection(r, collectionCategories, categoryID, touchCategory)}
	return r
}

func (r *Repository) Namespace() string {
	return r.namespace
}

func (r *Repository) key(name string) string {
	return kv.Key(r.namespace, name)
}

func (r *Repository) ensureInitialized(ctx context.Context) error {
	if r.store == nil || r.initialized.Load() {
		return nil
	}
	return r.Init(ctx)
}

// Init writes the seed collections when the namespace has no initialized
// marker and is a no-op otherwise.
func (r *Repository) Init(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	_, found, err := r.store.GetItem(ctx, r.key(initializedMarker))
	if err != nil {
		return err
	}
	if !found {
		log.Printf("[repository][%s] seeding namespace", r.namespace)
		if err := r.writeSeed(ctx); err != nil {
			return err
		}
		if err := r.store.SetItem(ctx, r.key(initializedMarker), "true"); err != nil {
			return err
		}
	}
	r.initialized.Store(true)
	return nil
}

// Reset drops the initialized marker and seeds again, discarding every change.
func (r *Repository) Reset(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	if err := r.store.RemoveItem(ctx, r.key(initializedMarker)); err != nil {
		return err
	}
	r.initialized.Store(false)
	log.Printf("[repository][%s] reset requested", r.namespace)
	return r.Init(ctx)
}

func (r *Repository) writeSeed(ctx context.Context) error {
	s, err := loadCatalogSeed()
	if err != nil {
		return err
	}
	writes := []struct {
		name  string
		items any
	}{
		{collectionProducts, s.Products},
		{collectionQuotes, s.Quotes},
		{collectionDownloads, s.Downloads},
		{collectionNews, s.News},
		{collectionDistributors, s.Distributors},
		{collectionCategories, s.Categories},
	}
	for _, w := range writes {
		if err := kv.SaveValue(ctx, r.store, r.key(w.name), w.items); err != nil {
			return err
		}
	}
	return nil
}
