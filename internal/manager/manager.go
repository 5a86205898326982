// internal/manager/manager.go
//
// Generic CRUD manager: the state machine behind every admin editor.
//
// Context
// -------
// The six admin editors behave identically: load the whole list, filter it
// in memory, open a form, submit, reload.  Manager[T, D] is that behaviour
// once, parameterised by a Config (which fields search looks at, which
// field is the category, how to build a blank or pre-filled draft).
//
// States
// ------
//
//	Loading ──ok──────────▶ Ready
//	        ──no table────▶ DatabaseNotReady
//	        ──other err───▶ Error
//
// From Ready: SetSearch / SetCategory recompute the visible subset;
// OpenCreate / OpenEdit put a draft in Form(); Submit validates, writes,
// reloads, and closes the form; RequestDelete → ConfirmDelete deletes and
// reloads.
//
// Notes
// -----
// • There is no optimistic local patching: every successful mutation is
//   followed by a full reload.
// • A failed mutation leaves items, filters, and the open form untouched
//   and sets Message().
// • A Manager belongs to one goroutine.  The in-flight guard is atomic so
//   a duplicate submission racing in from elsewhere gets ErrBusy instead of
//   a second write.
package manager

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// State is the manager lifecycle state.
type State string

const (
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateNotReady State = "database_not_ready"
	StateError    State = "error"
)

// MsgNotReady is shown whenever the tables are missing.
const MsgNotReady = "Database belum siap. Silakan jalankan script database terlebih dahulu."

var (
	ErrNotReady  = errors.New("manager: list not loaded")
	ErrBusy      = errors.New("manager: another action is in flight")
	ErrNoForm    = errors.New("manager: no form open")
	ErrNoPending = errors.New("manager: no delete awaiting confirmation")
)

// Keyed is implemented by every entity.
type Keyed interface {
	Key() string
}

// Repo is the subset of store.Repository a manager uses.
type Repo[T any] interface {
	List(ctx context.Context, o store.Order) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, p store.Patch) (T, error)
	Delete(ctx context.Context, id string) error
}

// Draft is an entity draft from internal/entity.
type Draft[T any] interface {
	form.Normalizer
	Record() T
	Fields() map[string]any
}

// Gate reports global readiness.  *Dashboard implements it.
type Gate interface {
	Ready() bool
}

// Config describes one entity to the generic manager.
type Config[T Keyed, D Draft[T]] struct {
	Name      string            // table name
	Label     string            // Indonesian noun for messages
	Search    func(T) []string  // fields matched by the search box
	Category  func(T) string    // nil when the entity has no category filter
	Blank     func() D          // draft for CreateRequested
	Prefill   func(T) D         // draft for EditRequested
	Immutable bool              // no create/edit from the admin
}

// Form is an open editor.
type Form[D any] struct {
	Draft  D
	EditID string // empty for create
}

// Editing reports whether the form edits an existing row.
func (f *Form[D]) Editing() bool { return f.EditID != "" }

// Manager drives one entity's repository.
type Manager[T Keyed, D Draft[T]] struct {
	cfg  Config[T, D]
	repo Repo[T]
	gate Gate

	state    State
	message  string
	items    []T
	visible  []T
	search   string
	category string
	form     *Form[D]
	pending  string

	inFlight atomic.Bool
}

// New returns a manager in the Loading state.  gate may be nil.
func New[T Keyed, D Draft[T]](cfg Config[T, D], repo Repo[T], gate Gate) *Manager[T, D] {
	return &Manager[T, D]{cfg: cfg, repo: repo, gate: gate, state: StateLoading}
}

func (m *Manager[T, D]) Name() string    { return m.cfg.Name }
func (m *Manager[T, D]) State() State    { return m.state }
func (m *Manager[T, D]) Message() string { return m.message }
func (m *Manager[T, D]) Items() []T      { return m.items }
func (m *Manager[T, D]) Visible() []T    { return m.visible }
func (m *Manager[T, D]) Form() *Form[D]  { return m.form }
func (m *Manager[T, D]) Pending() string { return m.pending }

// DismissMessage clears the current message.
func (m *Manager[T, D]) DismissMessage() { m.message = "" }

// Load fetches the full list in the table's default order.
func (m *Manager[T, D]) Load(ctx context.Context) error {
	m.state = StateLoading

	if m.gate != nil && !m.gate.Ready() {
		m.state = StateNotReady
		m.message = MsgNotReady
		return &store.Error{Op: "list", Table: m.cfg.Name, Kind: store.ErrUnavailable}
	}

	rows, err := m.repo.List(ctx, store.Order{})
	switch {
	case err == nil:
		m.state = StateReady
		m.message = ""
		m.items = rows
		m.refilter()
		return nil
	case errors.Is(err, store.ErrUnavailable):
		m.state = StateNotReady
		m.message = MsgNotReady
	default:
		m.state = StateError
		m.message = "Gagal memuat data " + m.cfg.Label + "."
	}
	logger.FromContext(ctx).Warnw("manager load failed", "table", m.cfg.Name, "state", m.state, "err", err)
	return err
}

// SetSearch changes the search term and recomputes the visible subset.
func (m *Manager[T, D]) SetSearch(q string) {
	m.search = strings.TrimSpace(q)
	m.refilter()
}

// SetCategory restricts the visible subset to one category value.  Empty
// or "all" lifts the restriction.
func (m *Manager[T, D]) SetCategory(c string) {
	c = strings.TrimSpace(c)
	if c == entity.FilterAll {
		c = ""
	}
	m.category = c
	m.refilter()
}

// refilter applies search AND category to items, keeping source order.
func (m *Manager[T, D]) refilter() {
	q := strings.ToLower(m.search)
	out := make([]T, 0, len(m.items))
	for _, it := range m.items {
		if m.category != "" && m.cfg.Category != nil && m.cfg.Category(it) != m.category {
			continue
		}
		if q != "" && !m.matches(it, q) {
			continue
		}
		out = append(out, it)
	}
	m.visible = out
}

func (m *Manager[T, D]) matches(it T, q string) bool {
	if m.cfg.Search == nil {
		return false
	}
	for _, f := range m.cfg.Search(it) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// OpenCreate opens a blank form.
func (m *Manager[T, D]) OpenCreate() (*Form[D], error) {
	if err := m.editable(); err != nil {
		return nil, err
	}
	m.form = &Form[D]{Draft: m.cfg.Blank()}
	return m.form, nil
}

// OpenEdit opens a form pre-filled from the loaded row with id.
func (m *Manager[T, D]) OpenEdit(id string) (*Form[D], error) {
	if err := m.editable(); err != nil {
		return nil, err
	}
	for _, it := range m.items {
		if it.Key() == id {
			m.form = &Form[D]{Draft: m.cfg.Prefill(it), EditID: id}
			return m.form, nil
		}
	}
	return nil, &store.Error{Op: "update", Table: m.cfg.Name, Kind: store.ErrNotFound}
}

// CloseForm discards the open form.
func (m *Manager[T, D]) CloseForm() { m.form = nil }

func (m *Manager[T, D]) editable() error {
	if m.cfg.Immutable {
		return &store.Error{Op: "update", Table: m.cfg.Name, Kind: store.ErrImmutable}
	}
	if m.state != StateReady {
		return ErrNotReady
	}
	return nil
}

// Submit validates the open form and creates or updates the row.  On
// success the list is reloaded and the form closed.  On failure the form
// stays open with Message() set.
func (m *Manager[T, D]) Submit(ctx context.Context) (T, error) {
	var zero T
	if m.form == nil {
		return zero, ErrNoForm
	}
	if !m.inFlight.CompareAndSwap(false, true) {
		return zero, ErrBusy
	}
	defer m.inFlight.Store(false)

	d := m.form.Draft
	if err := form.ValidateDraft(d); err != nil {
		m.message = err.Error()
		return zero, err
	}

	var (
		saved T
		err   error
	)
	if m.form.Editing() {
		saved, err = m.repo.Update(ctx, m.form.EditID, store.Patch(d.Fields()))
	} else {
		saved, err = m.repo.Create(ctx, d.Record())
	}
	if err != nil {
		m.message = m.failure(err, "Gagal menyimpan "+m.cfg.Label+". Silakan coba lagi.")
		logger.FromContext(ctx).Errorw("manager save failed", "table", m.cfg.Name,
			"edit_id", m.form.EditID, "err", err)
		return zero, err
	}

	m.form = nil
	m.message = ""
	m.reload(ctx)
	return saved, nil
}

// RequestDelete marks id for deletion pending confirmation.
func (m *Manager[T, D]) RequestDelete(id string) error {
	if m.state != StateReady {
		return ErrNotReady
	}
	m.pending = id
	return nil
}

// CancelDelete drops the pending deletion.
func (m *Manager[T, D]) CancelDelete() { m.pending = "" }

// ConfirmDelete deletes the pending id and reloads.  Deleting a row that
// no longer exists succeeds.
func (m *Manager[T, D]) ConfirmDelete(ctx context.Context) error {
	if m.pending == "" {
		return ErrNoPending
	}
	if !m.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer m.inFlight.Store(false)

	id := m.pending
	m.pending = ""
	if err := m.repo.Delete(ctx, id); err != nil {
		m.message = m.failure(err, "Gagal menghapus "+m.cfg.Label)
		logger.FromContext(ctx).Errorw("manager delete failed", "table", m.cfg.Name, "id", id, "err", err)
		return err
	}
	m.message = ""
	m.reload(ctx)
	return nil
}

// reload refreshes after a successful mutation.  A reload failure is
// reflected in State() and Message() but does not undo the mutation.
func (m *Manager[T, D]) reload(ctx context.Context) {
	_ = m.Load(ctx)
}

func (m *Manager[T, D]) failure(err error, generic string) string {
	if errors.Is(err, store.ErrUnavailable) {
		return MsgNotReady
	}
	return generic
}
