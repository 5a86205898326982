// cmd/seed/main.go
//
// Inserts the initial display content into every empty table, acting as
// the admin principal.  Tables that already hold rows are left alone, so
// re-running is harmless.  Contacts are never seeded.
package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/config"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/database"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/seed"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logOut, err := logger.New(cfg.Log.Dir, cfg.Log.Level, true)
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, database.DefaultOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx = auth.WithPrincipal(ctx, auth.Admin(cfg.Admin.Email))
	ctx = logger.WithContext(ctx, logOut)

	rep, err := seed.Apply(ctx, store.NewSet(db))
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(rep))
	for t := range rep {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		if rep[t] < 0 {
			fmt.Printf("%-18s skipped (not empty)\n", t)
			continue
		}
		fmt.Printf("%-18s %d rows\n", t, rep[t])
	}
	return nil
}
