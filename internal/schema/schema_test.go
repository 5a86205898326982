package schema

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/database"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

func TestStatements_CoversEveryTable(t *testing.T) {
	for _, driver := range []string{database.DriverMySQL, database.DriverPgx} {
		stmts, err := Statements(driver)
		if err != nil {
			t.Fatalf("%s: %v", driver, err)
		}
		if len(stmts) != 2*len(store.Tables) {
			t.Fatalf("%s: got %d statements", driver, len(stmts))
		}
		for i, tbl := range store.Tables {
			create := stmts[2*i]
			if !strings.HasPrefix(create, "CREATE TABLE IF NOT EXISTS "+tbl.Name+" (") {
				t.Errorf("%s: statement %d = %q", driver, 2*i, create)
			}
			for _, col := range tbl.Columns {
				if !strings.Contains(create, "\n  "+col+" ") {
					t.Errorf("%s: %s missing column %s", driver, tbl.Name, col)
				}
			}
		}
	}
}

func TestStatements_DriverTypes(t *testing.T) {
	my, _ := Statements(database.DriverMySQL)
	pg, _ := Statements(database.DriverPgx)

	if !strings.Contains(my[0], "DATETIME(6)") || !strings.Contains(my[0], "ENGINE=InnoDB") {
		t.Errorf("mysql contacts: %s", my[0])
	}
	if !strings.Contains(pg[0], "TIMESTAMPTZ") || !strings.Contains(pg[0], "id UUID PRIMARY KEY") {
		t.Errorf("pgx contacts: %s", pg[0])
	}
	if !strings.Contains(pg[1], "IF NOT EXISTS") || strings.Contains(my[1], "IF NOT EXISTS") {
		t.Errorf("index statements: %q / %q", pg[1], my[1])
	}
	if !strings.Contains(pg[0], "company VARCHAR(255) NULL") {
		t.Error("company must be nullable")
	}
}

func TestStatements_Unknown(t *testing.T) {
	if _, err := Statements("sqlite3"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestGrants(t *testing.T) {
	g := Grants("bkt_app")
	if len(g) != len(store.Tables) {
		t.Fatalf("got %d grants", len(g))
	}
	if g[0] != "GRANT SELECT, INSERT, UPDATE, DELETE ON contacts TO bkt_app" {
		t.Errorf("grant = %q", g[0])
	}
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	sdb := sqlx.NewDb(db, "mysql")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX i")).
		WillReturnError(&mysql.MySQLError{Number: 1061, Message: "Duplicate key name 'i'"})
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b")).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Apply(context.Background(), sdb, []string{"CREATE TABLE a", "CREATE INDEX i", "CREATE TABLE b"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestApply_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	sdb := sqlx.NewDb(db, "mysql")

	boom := errors.New("permission denied")
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a")).WillReturnError(boom)

	err = Apply(context.Background(), sdb, []string{"CREATE TABLE a", "CREATE TABLE b"})
	if !errors.Is(err, boom) {
		t.Fatalf("Apply err = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
