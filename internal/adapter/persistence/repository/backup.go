package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
)

// ExportData returns every catalog collection as an indented JSON document.
func (r *Repository) ExportData(ctx context.Context) (string, error) {
	if r.store == nil {
		return "{}", nil
	}
	if err := r.ensureInitialized(ctx); err != nil {
		return "", err
	}

	var (
		data catalogData
		err  error
	)
	if data.Products, err = r.Products.c.load(ctx); err != nil {
		return "", err
	}
	if data.Quotes, err = r.Quotes.c.load(ctx); err != nil {
		return "", err
	}
	if data.Downloads, err = r.Downloads.c.load(ctx); err != nil {
		return "", err
	}
	if data.News, err = r.News.c.load(ctx); err != nil {
		return "", err
	}
	if data.Distributors, err = r.Distributors.c.load(ctx); err != nil {
		return "", err
	}
	if data.Categories, err = r.Categories.c.load(ctx); err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}
	return string(b), nil
}

// ImportData replaces the collections present in data. The document is
// validated in full before anything is written: a malformed payload returns
// false and leaves storage untouched. Unknown keys and null members are
// ignored.
func (r *Repository) ImportData(ctx context.Context, data string) (bool, error) {
	if r.store == nil {
		return false, nil
	}
	if err := r.ensureInitialized(ctx); err != nil {
		return false, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &doc); err != nil || doc == nil {
		log.Printf("[repository][%s] import rejected: not a JSON object", r.namespace)
		return false, nil
	}

	writes := make(map[string]any)
	decoders := map[string]func(json.RawMessage) (any, error){
		collectionProducts:     decodeList[entities.Product],
		collectionQuotes:       decodeList[entities.QuoteRequest],
		collectionDownloads:    decodeList[entities.DownloadAsset],
		collectionNews:         decodeList[entities.NewsPost],
		collectionDistributors: decodeList[entities.Distributor],
		collectionCategories:   decodeList[entities.Category],
	}
	for name, decode := range decoders {
		raw, ok := doc[name]
		if !ok || kv.IsNull(raw) {
			continue
		}
		items, err := decode(raw)
		if err != nil {
			log.Printf("[repository][%s] import rejected: %s: %v", r.namespace, name, err)
			return false, nil
		}
		writes[name] = items
	}

	for name, items := range writes {
		if err := kv.SaveValue(ctx, r.store, r.key(name), items); err != nil {
			return false, err
		}
	}
	log.Printf("[repository][%s] imported %d collections", r.namespace, len(writes))
	return true, nil
}

// decodeList type-checks one collection of an imported document.
func decodeList[T any](raw json.RawMessage) (any, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
