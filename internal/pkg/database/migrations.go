package database

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	PgxDriverName   = "pgx"
	PostgresDialect = "postgres"
)

func MigrateDatabase(databaseUrl string, migrations fs.FS, dir string) error {
	db, err := sql.Open(PgxDriverName, databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(PostgresDialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}
