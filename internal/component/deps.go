// internal/component/deps.go
package component

import (
	"go.uber.org/zap"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/config"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/media"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/session"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Deps exposes the process-wide resources to Components during Init.
type Deps struct {
	Config    *config.Config
	Logger    *zap.SugaredLogger
	Store     *store.Set
	Dashboard *manager.Dashboard
	Sessions  *session.Manager
	CSRF      *form.CSRF
	Uploader  *media.Uploader
}
