// components/admin/resource.go
//
// One admin entity exposed over JSON, driven by a per-request
// manager.Manager.
//
// Workflow
// --------
//	GET    /api/admin/<table>?q=&category=        Load → SetSearch → SetCategory
//	POST   /api/admin/<table>                     Load → OpenCreate → overlay → Submit
//	PATCH  /api/admin/<table>/{id}                Load → OpenEdit(id) → overlay → Submit
//	DELETE /api/admin/<table>/{id}?confirm=true   Load → RequestDelete → ConfirmDelete
//	GET    /api/admin/<table>/export.csv          Load → filters → CSV of Visible()
//
// The JSON body is decoded over the draft the manager opened, so PATCH
// only needs the fields that change.
//
//------------------------------------------------------------------------------

package admin

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/export"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

type mountable interface {
	name() string
	routes(r chi.Router)
}

type resource[T manager.Keyed, D manager.Draft[T]] struct {
	cfg     manager.Config[T, D]
	repo    manager.Repo[T]
	gate    manager.Gate
	columns []export.Column[T]
	now     func() time.Time
}

func newResource[T manager.Keyed, D manager.Draft[T]](
	cfg manager.Config[T, D], repo manager.Repo[T], gate manager.Gate, cols []export.Column[T], now func() time.Time,
) *resource[T, D] {
	return &resource[T, D]{cfg: cfg, repo: repo, gate: gate, columns: cols, now: now}
}

func (res *resource[T, D]) name() string { return res.cfg.Name }

func (res *resource[T, D]) routes(r chi.Router) {
	r.Get("/", res.handleList)
	r.Get("/export.csv", res.handleExport)
	r.Post("/", res.handleCreate)
	r.Patch("/{id}", res.handleUpdate)
	r.Delete("/{id}", res.handleDelete)
}

// listing is the list response.  Total counts every loaded row, Items
// only those passing the filters.
type listing[T any] struct {
	State manager.State `json:"state"`
	Total int           `json:"total"`
	Items []T           `json:"items"`
}

type saved[T any] struct {
	Data T `json:"data"`
}

// open loads a fresh manager; on failure the response is already written.
func (res *resource[T, D]) open(w http.ResponseWriter, r *http.Request) (*manager.Manager[T, D], bool) {
	m := manager.New(res.cfg, res.repo, res.gate)
	if err := m.Load(r.Context()); err != nil {
		writeError(w, r, err, m.Message())
		return nil, false
	}
	return m, true
}

func (res *resource[T, D]) filtered(w http.ResponseWriter, r *http.Request) (*manager.Manager[T, D], bool) {
	m, ok := res.open(w, r)
	if !ok {
		return nil, false
	}
	q := r.URL.Query()
	m.SetSearch(q.Get("q"))
	m.SetCategory(q.Get("category"))
	return m, true
}

func (res *resource[T, D]) handleList(w http.ResponseWriter, r *http.Request) {
	m, ok := res.filtered(w, r)
	if !ok {
		return
	}
	items := m.Visible()
	if items == nil {
		items = []T{}
	}
	respond.JSON(w, http.StatusOK, listing[T]{State: m.State(), Total: len(m.Items()), Items: items})
}

func (res *resource[T, D]) handleExport(w http.ResponseWriter, r *http.Request) {
	m, ok := res.filtered(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, res.columns, m.Visible()); err != nil {
		writeError(w, r, err, "")
		return
	}
	name := export.CSVFilename(res.cfg.Name, res.now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	logger.FromContext(r.Context()).Infow("csv exported", "table", res.cfg.Name, "rows", len(m.Visible()))
}

func (res *resource[T, D]) handleCreate(w http.ResponseWriter, r *http.Request) {
	if res.cfg.Immutable {
		respond.Error(w, http.StatusMethodNotAllowed, MsgImmutable)
		return
	}
	m, ok := res.open(w, r)
	if !ok {
		return
	}
	f, err := m.OpenCreate()
	if err != nil {
		writeError(w, r, err, m.Message())
		return
	}
	res.submit(w, r, m, f, http.StatusCreated)
}

func (res *resource[T, D]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if res.cfg.Immutable {
		respond.Error(w, http.StatusMethodNotAllowed, MsgImmutable)
		return
	}
	m, ok := res.open(w, r)
	if !ok {
		return
	}
	f, err := m.OpenEdit(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, m.Message())
		return
	}
	res.submit(w, r, m, f, http.StatusOK)
}

func (res *resource[T, D]) submit(w http.ResponseWriter, r *http.Request, m *manager.Manager[T, D], f *manager.Form[D], status int) {
	if err := form.DecodeJSON(w, r, f.Draft); err != nil {
		logger.FromContext(r.Context()).Infow("admin body rejected", "table", res.cfg.Name, "err", err)
		respond.Error(w, http.StatusBadRequest, MsgBadBody)
		return
	}
	row, err := m.Submit(r.Context())
	if err != nil {
		writeError(w, r, err, m.Message())
		return
	}
	logger.FromContext(r.Context()).Infow("admin saved", "table", res.cfg.Name, "id", row.Key(), "edit", f.Editing())
	respond.JSON(w, status, saved[T]{Data: row})
}

func (res *resource[T, D]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		respond.Error(w, http.StatusPreconditionRequired, MsgConfirmDelete)
		return
	}
	m, ok := res.open(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := m.RequestDelete(id); err != nil {
		writeError(w, r, err, m.Message())
		return
	}
	if err := m.ConfirmDelete(r.Context()); err != nil {
		writeError(w, r, err, m.Message())
		return
	}
	logger.FromContext(r.Context()).Infow("admin deleted", "table", res.cfg.Name, "id", id)
	respond.JSON(w, http.StatusOK, map[string]string{"message": MsgDeleted, "id": id})
}
