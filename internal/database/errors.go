package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateIndex reports MySQL error 1061, "Duplicate key name", which
// a re-run CREATE INDEX raises.
func IsDuplicateIndex(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1061
}
