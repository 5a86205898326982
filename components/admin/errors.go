package admin

import (
	"errors"
	"net/http"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Response messages.
const (
	MsgBadBody       = "Data yang dikirim tidak valid."
	MsgConfirmDelete = "Penghapusan harus dikonfirmasi."
	MsgDeleted       = "Data berhasil dihapus."
	MsgNotFound      = "Data tidak ditemukan."
	MsgForbidden     = "Anda tidak memiliki akses untuk tindakan ini."
	MsgImmutable     = "Data ini tidak dapat diubah."
	MsgBusy          = "Permintaan lain sedang diproses. Silakan tunggu."
	MsgGeneric       = "Terjadi kesalahan. Silakan coba lagi."
	MsgProbeFailed   = "Gagal memeriksa status database."
	MsgStatsFailed   = "Gagal memuat statistik."
	MsgExportFailed  = "Gagal mengekspor data."
)

type notReady struct {
	Error string   `json:"error"`
	Setup []string `json:"setup"`
}

type invalid struct {
	Error  string            `json:"error"`
	Fields []form.ErrorField `json:"fields"`
}

func writeNotReady(w http.ResponseWriter) {
	respond.JSON(w, http.StatusServiceUnavailable, notReady{Error: manager.MsgNotReady, Setup: manager.SetupSteps})
}

// writeError maps err onto the HTTP taxonomy.  fallback is the manager's
// localized message, used for plain store failures.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve form.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.JSON(w, http.StatusBadRequest, invalid{Error: ve.Error(), Fields: ve.Fields})
	case errors.Is(err, store.ErrUnavailable):
		writeNotReady(w)
	case errors.Is(err, store.ErrNotFound):
		respond.Error(w, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, store.ErrForbidden):
		respond.Error(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, store.ErrImmutable):
		respond.Error(w, http.StatusMethodNotAllowed, MsgImmutable)
	case errors.Is(err, manager.ErrBusy):
		respond.Error(w, http.StatusConflict, MsgBusy)
	default:
		logger.FromContext(r.Context()).Errorw("admin request failed", "path", r.URL.Path, "err", err)
		if fallback == "" {
			fallback = MsgGeneric
		}
		respond.Error(w, http.StatusInternalServerError, fallback)
	}
}
