// internal/store/repository.go
//
// Generic single-table repository on sqlx.
//
// Context
// -------
// The six content tables share one contract: list in a fixed order, get one
// row, insert, patch, delete, and count.  Repository[T] implements it once;
// the Table value supplies the name, columns, and default order.  Every
// statement touches one row of one table, with no joins and no
// transactions.  Concurrent patches are last-write-wins.
//
// Workflow
// --------
//  1. authorize() checks the context principal against internal/acl.
//  2. The statement runs through sqlx; placeholders are rebound for the
//     driver in use (? for MySQL, $n for pgx).
//  3. classify() turns driver errors into *Error, marking missing tables
//     as ErrUnavailable.
//  4. done() records store_operations_total and logs failures with op and
//     table.
//
// Notes
// -----
// • Ties in the list order fall back to created_at then id, so equal
//   sort_order values keep insertion order.
// • Delete of a missing id succeeds.  Update of a missing id is
//   ErrNotFound.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/acl"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
)

// Record is implemented by pointers to entity structs.
type Record interface {
	Key() string
	Init(id string, now time.Time)
}

// Patch maps column names to new values.
type Patch map[string]any

// Repository is the store for one table of T rows.
type Repository[T any, P interface {
	*T
	Record
}] struct {
	db    *sqlx.DB
	table Table

	// Now and NewID are replaceable for tests.
	Now   func() time.Time
	NewID func() string
}

// New returns a repository for table t backed by db.
func New[T any, P interface {
	*T
	Record
}](db *sqlx.DB, t Table) *Repository[T, P] {
	return &Repository[T, P]{
		db:    db,
		table: t,
		Now:   time.Now,
		NewID: NewID,
	}
}

// NewID returns a time-ordered UUIDv7 string.  Ids from one process sort
// in creation order, so the trailing "id ASC" of every listing keeps
// insertion order when sort_order and created_at tie.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Table returns the table this repository serves.
func (r *Repository[T, P]) Table() Table { return r.table }

// List returns every row in order o.  The zero Order selects the table's
// default.
func (r *Repository[T, P]) List(ctx context.Context, o Order) ([]T, error) {
	const op = "list"
	if err := r.authorize(ctx, op, acl.Read); err != nil {
		return nil, err
	}
	if o.Column == "" {
		o = r.table.Order
	}
	if !r.table.hasColumn(o.Column) {
		return nil, r.done(ctx, op, &Error{Op: op, Table: r.table.Name,
			Err: fmt.Errorf("unknown order column %q", o.Column)})
	}

	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(r.table.Columns, ", "), r.table.Name, orderClause(o))

	out := []T{}
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	r.done(ctx, op, nil)
	return out, nil
}

// Get returns the row with id or ErrNotFound.
func (r *Repository[T, P]) Get(ctx context.Context, id string) (T, error) {
	const op = "get"
	var out T
	if err := r.authorize(ctx, op, acl.Read); err != nil {
		return out, err
	}

	q := r.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE id = ?",
		strings.Join(r.table.Columns, ", "), r.table.Name))

	if err := r.db.GetContext(ctx, &out, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, r.done(ctx, op, &Error{Op: op, Table: r.table.Name, Kind: ErrNotFound})
		}
		return out, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	r.done(ctx, op, nil)
	return out, nil
}

// Create inserts rec.  The id and timestamps are assigned here; whatever
// the caller put in them is overwritten.
func (r *Repository[T, P]) Create(ctx context.Context, rec T) (T, error) {
	const op = "create"
	if err := r.authorize(ctx, op, acl.Create); err != nil {
		return rec, err
	}

	P(&rec).Init(r.NewID(), r.now())

	cols := r.table.Columns
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		r.table.Name, strings.Join(cols, ", "), strings.Join(cols, ", :"))

	if _, err := r.db.NamedExecContext(ctx, q, &rec); err != nil {
		return rec, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	r.done(ctx, op, nil)
	return rec, nil
}

// Update applies p to the row with id, refreshes updated_at, and returns
// the row as stored.
func (r *Repository[T, P]) Update(ctx context.Context, id string, p Patch) (T, error) {
	const op = "update"
	var zero T
	if err := r.authorize(ctx, op, acl.Update); err != nil {
		return zero, err
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		if !r.table.isMutable(k) {
			return zero, r.done(ctx, op, &Error{Op: op, Table: r.table.Name,
				Err: fmt.Errorf("column %q is not mutable", k)})
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+2)
	for _, k := range keys {
		set = append(set, k+" = ?")
		args = append(args, p[k])
	}
	if r.table.Touch {
		set = append(set, "updated_at = ?")
		args = append(args, r.now())
	}
	args = append(args, id)

	q := r.db.Rebind(fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
		r.table.Name, strings.Join(set, ", ")))

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return zero, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return zero, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	if n == 0 {
		return zero, r.done(ctx, op, &Error{Op: op, Table: r.table.Name, Kind: ErrNotFound})
	}
	r.done(ctx, op, nil)
	return r.Get(ctx, id)
}

// Delete removes the row with id.  A missing row is not an error.
func (r *Repository[T, P]) Delete(ctx context.Context, id string) error {
	const op = "delete"
	if err := r.authorize(ctx, op, acl.Delete); err != nil {
		return err
	}

	q := r.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.table.Name))
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return r.done(ctx, op, classify(op, r.table.Name, err))
	}
	r.done(ctx, op, nil)
	return nil
}

// Count returns the number of rows without loading them.
func (r *Repository[T, P]) Count(ctx context.Context) (int, error) {
	const op = "count"
	if err := r.authorize(ctx, op, acl.Read); err != nil {
		return 0, err
	}

	var n int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table.Name)
	if err := r.db.GetContext(ctx, &n, q); err != nil {
		return 0, r.done(ctx, op, classify(op, r.table.Name, err))
	}
	r.done(ctx, op, nil)
	return n, nil
}

/*──────────────────────────── helpers ─────────────────────────────*/

func (r *Repository[T, P]) now() time.Time {
	return r.Now().UTC().Truncate(time.Microsecond)
}

func (r *Repository[T, P]) authorize(ctx context.Context, op string, a acl.Action) error {
	p := auth.FromContext(ctx)
	if a == acl.Update && len(r.table.Mutable) == 0 {
		return r.done(ctx, op, &Error{Op: op, Table: r.table.Name, Kind: ErrImmutable})
	}
	if !acl.Allowed(p.Role, r.table.Name, a) {
		return r.done(ctx, op, &Error{Op: op, Table: r.table.Name, Kind: ErrForbidden,
			Err: fmt.Errorf("role %q may not %s", p.Role, a)})
	}
	return nil
}

// done records the outcome and logs failures.  It returns err unchanged.
func (r *Repository[T, P]) done(ctx context.Context, op string, err error) error {
	res := Result(err)
	metrics.StoreOperations.WithLabelValues(r.table.Name, op, res).Inc()
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx).With("op", op, "table", r.table.Name, "err", err)
	switch res {
	case metrics.ResultNotFound:
		log.Debug("store row not found")
	case metrics.ResultError:
		log.Error("store operation failed")
	default:
		log.Warn("store operation rejected")
	}
	return err
}

func orderClause(o Order) string {
	dir := "DESC"
	if o.Ascending {
		dir = "ASC"
	}
	clause := o.Column + " " + dir
	if o.Column != "created_at" {
		clause += ", created_at ASC"
	}
	if o.Column != "id" {
		clause += ", id ASC"
	}
	return clause
}
