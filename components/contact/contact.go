// components/contact/contact.go
//
// Public contact intake: POST /api/contact.
//
// Workflow
// --------
//  1. Decode the JSON body into entity.ContactDraft.
//  2. form.ValidateContact normalizes and checks it; the first failure is
//     returned verbatim as {error}.
//  3. The row is inserted as the request's principal (anon on the public
//     site), then echoed back with 201.
//
// Notes
// -----
// • A body that is not JSON is a server-side failure in the public
//   contract, not a validation error, and returns 500.
// • Every outcome increments contact_submissions_total{result}.
//
//------------------------------------------------------------------------------

package contact

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/requestinfo"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Response messages.
const (
	MsgCreated     = "Pesan Anda berhasil dikirim. Tim kami akan segera menghubungi Anda."
	MsgSaveFailed  = "Gagal menyimpan data. Silakan coba lagi."
	MsgServerError = "Terjadi kesalahan server. Silakan coba lagi."
)

// Compile-time assertion: *Component satisfies component.Component.
var _ component.Component = (*Component)(nil)

// Creator inserts one contact row.  *store.ContactRepository implements it.
type Creator interface {
	Create(ctx context.Context, c entity.Contact) (entity.Contact, error)
}

// Component serves the intake endpoint.
type Component struct {
	Contacts Creator
}

// Name returns the canonical component key.
func (c *Component) Name() string { return "contact" }

// Init takes the contacts repository.
func (c *Component) Init(d component.Deps) error {
	c.Contacts = d.Store.Contacts
	return nil
}

// Routes attaches POST /api/contact.
func (c *Component) Routes(r chi.Router) {
	r.Post("/api/contact", c.handleSubmit)
}

// Register component at program start.
func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

type created struct {
	Message string         `json:"message"`
	Data    entity.Contact `json:"data"`
}

func (c *Component) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx).With(requestinfo.FromContext(ctx).Fields()...)

	var d entity.ContactDraft
	if err := form.DecodeJSON(w, r, &d); err != nil {
		log.Warnw("contact body rejected", "err", err)
		metrics.ContactSubmissions.WithLabelValues(metrics.ResultError).Inc()
		respond.Error(w, http.StatusInternalServerError, MsgServerError)
		return
	}

	row, err := form.ValidateContact(&d)
	if err != nil {
		log.Infow("contact invalid", "reason", err.Error())
		metrics.ContactSubmissions.WithLabelValues(metrics.ResultInvalid).Inc()
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := c.Contacts.Create(ctx, row)
	if err != nil {
		log.Errorw("contact insert failed", "err", err)
		metrics.ContactSubmissions.WithLabelValues(store.Result(err)).Inc()
		respond.Error(w, http.StatusInternalServerError, MsgSaveFailed)
		return
	}

	log.Infow("contact received", "id", saved.ID, "service_type", saved.ServiceType)
	metrics.ContactSubmissions.WithLabelValues(metrics.ResultOK).Inc()
	respond.JSON(w, http.StatusCreated, created{Message: MsgCreated, Data: saved})
}
