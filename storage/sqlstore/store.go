package sqlstore

import (
	"context"
	"database/sql"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
)

const (
	getQuery    = `SELECT entry_value FROM kv_entries WHERE entry_key = ?`
	deleteQuery = `DELETE FROM kv_entries WHERE entry_key = ?`
	keysQuery   = `SELECT entry_key FROM kv_entries WHERE substr(entry_key, 1, ?) = ?`
	putQuery    = `INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = excluded.updated_at`
)

// Store keeps entries in the kv_entries table of a postgres or sqlite3 database.
type Store struct {
	db *sqlx.DB
}

var _ core.Store = (*Store)(nil)

func IsSQLEngine(engine string) bool {
	return engine == core.EnginePostgres || engine == core.EngineSQLite
}

// Open connects to the configured database, waits for it to answer and migrates it.
func Open(ctx context.Context, conf *core.Config) (*Store, error) {
	engine := conf.Database.Engine
	if !IsSQLEngine(engine) {
		return nil, errors.Errorf("unsupported SQL engine %q", engine)
	}
	if err := Migrate(conf); err != nil {
		return nil, errors.Wrap(err, "migrating")
	}

	db, err := sqlx.Open(engine, conf.Database.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if engine == core.EngineSQLite {
		db.SetMaxOpenConns(1) // sqlite allows a single writer
	} else if conf.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.Database.MaxOpenConns)
	}

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "pinging database")
	}
	return &Store{db: db}, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	if err := s.db.GetContext(ctx, &val, s.db.Rebind(getQuery), key); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNotFound
		}
		return nil, errors.Wrap(err, "selecting entry")
	}
	return val, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(putQuery), key, value, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "upserting entry")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(deleteQuery), key); err != nil {
		return errors.Wrap(err, "deleting entry")
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	if err := s.db.SelectContext(ctx, &keys, s.db.Rebind(keysQuery), utf8.RuneCountInString(prefix), prefix); err != nil {
		return nil, errors.Wrap(err, "selecting keys")
	}
	sort.Strings(keys) // collations differ between engines
	return keys, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
