// Package sql provides sequence adapters for database operations using
// database/sql: queries as sequence sources and a statement-executing
// sink reducer, so database rows can feed and terminate transductions.
package sql

import (
	"context"
	"database/sql"
	"iter"

	"github.com/lguimbarda/min-xduce/xduce/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Source exposes query rows as a replayable sequence. Each traversal of
// Seq re-executes the query. Query and scan failures end the sequence;
// check Err after the traversal, as with sql.Rows.
type Source[T any] struct {
	ctx   context.Context
	db    *sql.DB
	query string
	scan  Scanner[T]
	args  []any
	err   error
}

// Query creates a Source that executes the query and yields one scanned
// value per row.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) *Source[T] {
	return &Source[T]{ctx: ctx, db: db, query: query, scan: scan, args: args}
}

// Seq returns the sequence of scanned rows. The sequence is safe to
// traverse multiple times; each traversal runs the query again and
// resets Err.
func (s *Source[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.err = nil
		rows, err := s.db.QueryContext(s.ctx, s.query, s.args...)
		if err != nil {
			s.err = err
			return
		}
		defer rows.Close()
		for rows.Next() {
			value, err := s.scan(rows)
			if err != nil {
				s.err = err
				return
			}
			if !yield(value) {
				return
			}
		}
		s.err = rows.Err()
	}
}

// Err reports the failure, if any, of the most recent traversal of Seq.
func (s *Source[T]) Err() error {
	return s.err
}

// ExecResult accumulates the outcome of an Insert reduction. Err is set
// and the traversal terminated on the first failing statement; rows
// executed before the failure stay counted.
type ExecResult struct {
	RowsAffected int64
	Err          error
}

// Insert returns a sink reducer that executes the statement once per
// item, binding arguments with the binder function. The first execution
// error is folded into the result and stops the traversal.
func Insert[A any](ctx context.Context, db *sql.DB, query string, binder func(A) []any) core.Reducer[struct{}, A, ExecResult] {
	return insertReducer[A]{ctx: ctx, db: db, query: query, binder: binder}
}

type insertReducer[A any] struct {
	ctx    context.Context
	db     *sql.DB
	query  string
	binder func(A) []any
}

func (r insertReducer[A]) InitialState() struct{} { return struct{}{} }

func (r insertReducer[A]) Identity() ExecResult { return ExecResult{} }

func (r insertReducer[A]) StepL(_ struct{}, acc ExecResult, item A) (struct{}, core.Reduction[ExecResult]) {
	return struct{}{}, r.exec(acc, item)
}

func (r insertReducer[A]) StepR(_ struct{}, item A, rest core.Reduction[ExecResult]) (struct{}, core.Reduction[ExecResult]) {
	return struct{}{}, r.exec(rest.Value(), item)
}

func (r insertReducer[A]) Completion(_ struct{}, result ExecResult) ExecResult { return result }

func (r insertReducer[A]) exec(acc ExecResult, item A) core.Reduction[ExecResult] {
	result, err := r.db.ExecContext(r.ctx, r.query, r.binder(item)...)
	if err != nil {
		acc.Err = err
		return core.Reduced(acc)
	}
	affected, _ := result.RowsAffected()
	acc.RowsAffected += affected
	return core.Continue(acc)
}
