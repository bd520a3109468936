// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap. Each database
// dialect has its own directory because the schemas differ in column types.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres holds the migrations for the Postgres reservation store.
var Postgres = mustSub("postgres")

// SQLite holds the migrations for the SQLite reservation store.
var SQLite = mustSub("sqlite")

// For returns the migration set for a goose dialect.
func For(dialect goose.Dialect) (fs.FS, error) {
	switch dialect {
	case goose.DialectPostgres:
		return Postgres, nil
	case goose.DialectSQLite3:
		return SQLite, nil
	}
	return nil, fmt.Errorf("migrations.For: unsupported dialect %q", dialect)
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
