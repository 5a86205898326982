// components/media/media.go
//
// Admin image upload: POST /api/upload.
//
// The route is admin-only and CSRF-protected because the write goes out
// with the service-role credential.  The multipart "file" part is read
// into memory (at most media.MaxSize+1 bytes) and handed to the uploader,
// which owns type, size, and key rules.
//
//------------------------------------------------------------------------------

package media

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/acl"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/media"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

// MsgUploadFailed is the only text a backend failure produces.
const MsgUploadFailed = "Upload failed"

// multipart framing allowance on top of the file itself.
const formSlack = 1 << 20

var _ component.Component = (*Component)(nil)

// Uploader stores one validated file.  *media.Uploader implements it.
type Uploader interface {
	Upload(ctx context.Context, f media.File) (media.Result, error)
}

// Component serves the upload endpoint.
type Component struct {
	Uploader Uploader
	// Protect wraps mutating routes; cmd/web passes the CSRF check.
	Protect func(http.Handler) http.Handler
}

func (c *Component) Name() string { return "media" }

func (c *Component) Init(d component.Deps) error {
	c.Uploader = d.Uploader
	if d.CSRF != nil {
		c.Protect = d.CSRF.Require
	}
	return nil
}

func (c *Component) Routes(r chi.Router) {
	r.Group(func(g chi.Router) {
		g.Use(acl.RequireRole(auth.RoleAdmin))
		if c.Protect != nil {
			g.Use(c.Protect)
		}
		g.Post("/api/upload", c.handleUpload)
	})
}

func init() { component.Register(&Component{}) }

func (c *Component) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, media.MaxSize+formSlack)
	f, err := readFile(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	res, err := c.Uploader.Upload(ctx, f)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	log.Infow("media uploaded", "path", res.Path, "bytes", len(f.Body))
	metrics.MediaUploads.WithLabelValues(metrics.ResultOK).Inc()
	respond.JSON(w, http.StatusOK, res)
}

func readFile(r *http.Request) (media.File, error) {
	if err := r.ParseMultipartForm(media.MaxSize); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return media.File{}, media.ErrTooLarge
		}
		return media.File{}, media.ErrNoFile
	}
	part, hdr, err := r.FormFile("file")
	if err != nil {
		return media.File{}, media.ErrNoFile
	}
	defer part.Close()

	body, err := io.ReadAll(io.LimitReader(part, media.MaxSize+1))
	if err != nil {
		return media.File{}, err
	}
	return media.File{
		Name:        hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (c *Component) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	if media.IsValidation(err) {
		log.Infow("media rejected", "reason", err.Error())
		metrics.MediaUploads.WithLabelValues(metrics.ResultInvalid).Inc()
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Errorw("media upload failed", "err", err)
	metrics.MediaUploads.WithLabelValues(metrics.ResultError).Inc()
	respond.Error(w, http.StatusInternalServerError, MsgUploadFailed)
}
