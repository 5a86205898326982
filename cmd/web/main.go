// cmd/web/main.go
//
// PT Bakti Karya Teknik – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (conf/.env → conf/global.yaml → BKT_* env, vault
//     references resolved).
//
//  2. Start the daily rotating logger (tees to console when running in a
//     TTY).
//
//  3. Open the database pool and probe readiness once.  Missing tables are
//     not fatal: the public site falls back to static content and the
//     admin shows setup steps until provisioning has run.
//
//  4. Build the shared resources (store, dashboard, session, CSRF, media
//     uploader) and mount every registered component.
//
//  5. Serve with explicit timeouts; SIGINT / SIGTERM drains in-flight
//     requests before exit.
//
// Middleware order: RequestID → RealIP → Recoverer → Security → ForceHTTPS
// → RequestLogger → session → Enrich.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/config"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/database"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/media"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/middleware"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/requestinfo"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/server"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/session"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"

	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/admin"
	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/auth"
	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/contact"
	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/debug"
	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/media"
	_ "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/components/site"
)

const shutdownGrace = 15 * time.Second

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Log.Dir, cfg.Log.Level, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logOut); err != nil {
		logOut.Fatalw("web exited", "err", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logOut *zap.SugaredLogger) error {
	//
	// ── 1.  Database ────────────────────────────────────────────────────
	//
	opts := database.DefaultOptions
	if cfg.Database.MaxOpen > 0 {
		opts.MaxOpenConns = cfg.Database.MaxOpen
	}
	if cfg.Database.MaxIdle > 0 {
		opts.MaxIdleConns = cfg.Database.MaxIdle
	}
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, opts)
	if err != nil {
		return err
	}
	defer db.Close()
	logOut.Infow("database online", "driver", cfg.Database.Driver)

	set := store.NewSet(db)
	dash := manager.NewDashboard(set.Counters())
	if ok, err := dash.Probe(ctx); err != nil {
		logOut.Warnw("readiness probe failed", "err", err)
	} else if !ok {
		logOut.Warnw("content tables missing; run bkt-provision then bkt-seed")
	}

	//
	// ── 2.  Optional GeoLite2 ───────────────────────────────────────────
	//
	if cfg.GeoIP.Path != "" {
		if err := requestinfo.InitGeo(cfg.GeoIP.Path); err != nil {
			logOut.Warnw("geoip disabled", "path", cfg.GeoIP.Path, "err", err)
		} else {
			defer requestinfo.CloseGeo()
		}
	}

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	sessions := session.New([]byte(cfg.Admin.SessionSecret), cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.HTTP.ForceHTTPS)

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Security, middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS))
	r.Use(middleware.RequestLogger(logOut))
	r.Use(sessions.Middleware, requestinfo.Enrich)

	r.Handle("/metrics", promhttp.Handler())

	storage, err := newStorage(cfg, r)
	if err != nil {
		return err
	}

	deps := component.Deps{
		Config:    cfg,
		Logger:    logOut,
		Store:     set,
		Dashboard: dash,
		Sessions:  sessions,
		CSRF:      form.NewCSRF([]byte(cfg.Admin.CSRFSecret)),
		Uploader:  media.NewUploader(storage),
	}
	if err := component.Mount(r, deps); err != nil {
		return err
	}

	//
	// ── 4.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})

	errc := make(chan error, 1)
	go func() {
		logOut.Infow("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logOut.Infow("shutting down", "grace", shutdownGrace)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(sctx)
}

// newStorage picks the media backend.  The local backend's files are
// served from its public base path when that is a path on this host.
func newStorage(cfg *config.Config, r chi.Router) (media.Storage, error) {
	switch cfg.Storage.Driver {
	case "hosted":
		return media.NewHosted(cfg.Backend.URL, cfg.Storage.Bucket, cfg.Backend.ServiceRoleKey), nil
	case "local":
		if err := os.MkdirAll(cfg.Storage.LocalDir, 0o755); err != nil {
			return nil, err
		}
		base := strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
		if strings.HasPrefix(base, "/") {
			fs := http.StripPrefix(base, http.FileServer(http.Dir(cfg.Storage.LocalDir)))
			r.Handle(base+"/*", fs)
		}
		return &media.Local{Dir: cfg.Storage.LocalDir, BaseURL: base}, nil
	}
	return nil, errors.New("unknown storage driver " + cfg.Storage.Driver)
}
