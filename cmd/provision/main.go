// cmd/provision/main.go
//
// Creates the six content tables for the configured driver.  This is the
// out-of-band provisioning step; the web binary never runs DDL.
//
//	bkt-provision              create tables and indexes
//	bkt-provision -dry-run     print the statements instead
//	bkt-provision -grant app   also grant row-level DML to role "app"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/config"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/database"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/schema"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("provision: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bkt-provision", flag.ExitOnError)
	dryRun := fs.Bool("dry-run", false, "Print the statements without executing them")
	grant := fs.String("grant", "", "Database role to grant SELECT, INSERT, UPDATE, DELETE on every table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stmts, err := schema.Statements(cfg.Database.Driver)
	if err != nil {
		return err
	}
	if *grant != "" {
		stmts = append(stmts, schema.Grants(*grant)...)
	}

	if *dryRun {
		for _, s := range stmts {
			fmt.Println(s + ";")
		}
		return nil
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

	if err := schema.Apply(ctx, db, stmts); err != nil {
		return err
	}
	logOut.Infow("schema provisioned", "driver", cfg.Database.Driver, "statements", len(stmts))
	return nil
}
