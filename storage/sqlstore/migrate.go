package sqlstore

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the schema of the configured database up to date.
// It uses its own connection: the migrate drivers close the *sql.DB they are handed.
func Migrate(conf *core.Config) error {
	engine := conf.Database.Engine
	if !IsSQLEngine(engine) {
		return errors.Errorf("engine %q has no SQL migrations", engine)
	}

	db, err := sql.Open(engine, conf.Database.DSN)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}

	var driver database.Driver
	switch engine {
	case core.EnginePostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case core.EngineSQLite:
		driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	}
	if err != nil {
		_ = db.Close()
		return errors.Wrap(err, "creating migration driver")
	}

	src, err := iofs.New(migrationsFS, "migrations/"+engine)
	if err != nil {
		_ = driver.Close()
		return errors.Wrap(err, "reading migrations")
	}

	m, err := migrate.NewWithInstance("iofs", src, engine, driver)
	if err != nil {
		_ = driver.Close()
		return errors.Wrap(err, "creating migrator")
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
