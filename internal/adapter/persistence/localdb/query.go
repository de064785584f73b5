package localdb

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// OrderOptions tunes Order. The zero value sorts ascending.
type OrderOptions struct {
	Descending bool
}

type eqFilter struct {
	field string
	value any
}

type orderSpec struct {
	field     string
	ascending bool
}

// Query is a chainable builder. Select, Eq and Order only record state;
// Execute, Then, Single, Insert, Update and Delete touch storage.
type Query struct {
	client  *Client
	table   string
	columns []string
	filter  *eqFilter
	order   *orderSpec
}

// Select limits the returned columns. "*" or an empty string keeps all of them.
func (q *Query) Select(columns string) *Query {
	q.columns = nil
	for _, col := range strings.Split(columns, ",") {
		col = strings.TrimSpace(col)
		if col == "*" {
			q.columns = nil
			return q
		}
		if col != "" {
			q.columns = append(q.columns, col)
		}
	}
	return q
}

// Eq filters rows whose field equals value. Only one filter is kept: a second
// call replaces the first.
func (q *Query) Eq(field string, value any) *Query {
	q.filter = &eqFilter{field: field, value: value}
	return q
}

func (q *Query) Order(field string, opts OrderOptions) *Query {
	q.order = &orderSpec{field: field, ascending: !opts.Descending}
	return q
}

func (q *Query) matches(r Record) bool {
	if q.filter == nil {
		return true
	}
	v, ok := r[q.filter.field]
	return ok && valuesEqual(v, q.filter.value)
}

func (q *Query) project(r Record) Record {
	if len(q.columns) == 0 {
		return copyRecord(r)
	}
	out := make(Record, len(q.columns))
	for _, col := range q.columns {
		if v, ok := r[col]; ok {
			out[col] = v
		}
	}
	return out
}

// Execute runs the read.
func (q *Query) Execute(ctx context.Context) Result {
	_, rows, qerr := q.client.table(ctx, q.table)
	if qerr != nil {
		return Result{Data: []Record{}, Error: qerr}
	}

	matched := make([]Record, 0, len(rows))
	for _, r := range rows {
		if q.matches(r) {
			matched = append(matched, r)
		}
	}
	if q.order != nil {
		field, asc := q.order.field, q.order.ascending
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i][field], matched[j][field])
			if asc {
				return c < 0
			}
			return c > 0
		})
	}

	out := make([]Record, 0, len(matched))
	for _, r := range matched {
		out = append(out, q.project(r))
	}
	return Result{Data: out}
}

// Then is the awaitable form of Execute. The returned channel already holds
// the result when Then returns.
func (q *Query) Then(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	ch <- q.Execute(ctx)
	close(ch)
	return ch
}

// Single runs immediately and returns the first matching row.
func (q *Query) Single(ctx context.Context) SingleResult {
	res := q.Execute(ctx)
	if res.Error != nil {
		return SingleResult{Error: res.Error}
	}
	if len(res.Data) == 0 {
		return SingleResult{Error: &QueryError{Code: CodeNoRows, Message: "no rows returned"}}
	}
	return SingleResult{Data: res.Data[0]}
}

// Insert appends rows to the table. Rows without an id get a UUID; created_at
// and updated_at are always stamped. The stored rows are returned.
func (q *Query) Insert(ctx context.Context, rows ...Record) Result {
	doc, existing, qerr := q.client.table(ctx, q.table)
	if qerr != nil {
		return Result{Data: []Record{}, Error: qerr}
	}

	now := q.client.timestamp()
	inserted := make([]Record, 0, len(rows))
	for _, r := range rows {
		row := copyRecord(r)
		if id, ok := row["id"]; !ok || id == nil || id == "" {
			row["id"] = uuid.NewString()
		}
		row["created_at"] = now
		row["updated_at"] = now
		inserted = append(inserted, row)
	}

	doc[q.table] = append(existing, inserted...)
	if qerr := q.client.save(ctx, doc); qerr != nil {
		return Result{Data: []Record{}, Error: qerr}
	}
	log.Printf("[localdb][%s] inserted %d rows", q.table, len(inserted))

	out := make([]Record, 0, len(inserted))
	for _, r := range inserted {
		out = append(out, copyRecord(r))
	}
	return Result{Data: out}
}

// Update merges values into the first row matching the Eq filter. Without a
// filter nothing is written.
func (q *Query) Update(ctx context.Context, values Record) SingleResult {
	if q.filter == nil {
		return SingleResult{Error: &QueryError{Code: CodeNoFilter, Message: "update requires an eq filter"}}
	}
	doc, rows, qerr := q.client.table(ctx, q.table)
	if qerr != nil {
		return SingleResult{Error: qerr}
	}

	for i, r := range rows {
		if !q.matches(r) {
			continue
		}
		row := copyRecord(r)
		for k, v := range values {
			row[k] = v
		}
		row["updated_at"] = q.client.timestamp()
		rows[i] = row
		doc[q.table] = rows
		if qerr := q.client.save(ctx, doc); qerr != nil {
			return SingleResult{Error: qerr}
		}
		return SingleResult{Data: copyRecord(row)}
	}
	return SingleResult{Error: &QueryError{Code: CodeNoRows, Message: "no rows matched the filter"}}
}

// Delete removes every row matching the Eq filter and returns them. Like
// Update it refuses to run without a filter.
func (q *Query) Delete(ctx context.Context) Result {
	if q.filter == nil {
		return Result{Data: []Record{}, Error: &QueryError{Code: CodeNoFilter, Message: "delete requires an eq filter"}}
	}
	doc, rows, qerr := q.client.table(ctx, q.table)
	if qerr != nil {
		return Result{Data: []Record{}, Error: qerr}
	}

	kept := make([]Record, 0, len(rows))
	removed := make([]Record, 0)
	for _, r := range rows {
		if q.matches(r) {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	if len(removed) == 0 {
		return Result{Data: removed}
	}

	doc[q.table] = kept
	if qerr := q.client.save(ctx, doc); qerr != nil {
		return Result{Data: []Record{}, Error: qerr}
	}
	return Result{Data: removed}
}
