package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/storage/inmem"
	"github.com/trezcool/lms/storage/redisstore"
	"github.com/trezcool/lms/storage/sqlstore"
)

// Open returns the Store selected by database.engine.
func Open(ctx context.Context, conf *core.Config) (core.Store, error) {
	switch conf.Database.Engine {
	case core.EngineInMem, "":
		return inmem.Open(), nil
	case core.EngineSQLite, core.EnginePostgres:
		return sqlstore.Open(ctx, conf)
	case core.EngineRedis:
		return redisstore.Open(ctx, conf)
	default:
		return nil, errors.Errorf("unknown database engine %q", conf.Database.Engine)
	}
}
