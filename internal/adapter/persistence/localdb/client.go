// Package localdb emulates the query builder of a hosted Postgres client on
// top of the local storage substrate.
//
// All tables live in one JSON document under a single key (default
// "local_db"):
//
//	{ "products": [], "quote_requests": [], "categories": [] }
//
// Rows are untyped records. Failures are reported in results as *QueryError
// values, the builder never panics on bad input.
package localdb

import (
	"context"
	"encoding/json"
	"log"

	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

const (
	DefaultKey = "local_db"

	TableProducts      = "products"
	TableQuoteRequests = "quote_requests"
	TableCategories    = "categories"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Record is one row. Numbers decoded from storage are float64.
type Record = map[string]any

type document map[string][]Record

var knownTables = []string{TableProducts, TableQuoteRequests, TableCategories}

func defaultCategories() []Record {
	return []Record{
		{
			"id":         "5b0c6a3e-0f7e-4a38-9d0e-8f1f6c2d1a01",
			"name":       "Tanques",
			"slug":       "tanques",
			"created_at": "2024-01-01T00:00:00.000Z",
			"updated_at": "2024-01-01T00:00:00.000Z",
		},
		{
			"id":         "5b0c6a3e-0f7e-4a38-9d0e-8f1f6c2d1a02",
			"name":       "Acessórios",
			"slug":       "acessorios",
			"created_at": "2024-01-01T00:00:00.000Z",
			"updated_at": "2024-01-01T00:00:00.000Z",
		},
	}
}

type Client struct {
	store interfaces.IStorage
	key   string
	now   ident.Clock
}

type Option func(*Client)

func WithKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.key = key
		}
	}
}

func WithClock(clock ident.Clock) Option {
	return func(c *Client) {
		if clock != nil {
			c.now = clock
		}
	}
}

func NewClient(store interfaces.IStorage, opts ...Option) *Client {
	c := &Client{store: store, key: DefaultKey, now: ident.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// From starts a query on table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

func (c *Client) timestamp() string {
	return c.now().UTC().Format(timestampLayout)
}

// load returns the whole document, seeding any table that is missing. The
// seeded document is written back only when a table had to be added.
func (c *Client) load(ctx context.Context) (document, *QueryError) {
	doc := document{}
	if c.store != nil {
		raw, found, err := c.store.GetItem(ctx, c.key)
		if err != nil {
			return nil, storageError(err)
		}
		if found {
			if err := json.Unmarshal([]byte(raw), &doc); err != nil {
				return nil, &QueryError{Code: CodeStorage, Message: "corrupted local database: " + err.Error()}
			}
			if doc == nil {
				doc = document{}
			}
		}
	}

	seeded := false
	for _, table := range knownTables {
		if _, ok := doc[table]; ok {
			continue
		}
		seeded = true
		if table == TableCategories {
			doc[table] = defaultCategories()
		} else {
			doc[table] = []Record{}
		}
	}
	if seeded && c.store != nil {
		log.Printf("[localdb] seeding missing tables under %s", c.key)
		if qerr := c.save(ctx, doc); qerr != nil {
			return nil, qerr
		}
	}
	return doc, nil
}

func (c *Client) save(ctx context.Context, doc document) *QueryError {
	if c.store == nil {
		return storageError(interfaces.ErrStorageUnavailable)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return storageError(err)
	}
	if err := c.store.SetItem(ctx, c.key, string(b)); err != nil {
		return storageError(err)
	}
	return nil
}

func (c *Client) table(ctx context.Context, name string) (document, []Record, *QueryError) {
	if !isKnownTable(name) {
		return nil, nil, &QueryError{Code: CodeUnknownTable, Message: "relation \"" + name + "\" does not exist"}
	}
	doc, qerr := c.load(ctx)
	if qerr != nil {
		return nil, nil, qerr
	}
	return doc, doc[name], nil
}

func isKnownTable(name string) bool {
	for _, t := range knownTables {
		if t == name {
			return true
		}
	}
	return false
}

func copyRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

