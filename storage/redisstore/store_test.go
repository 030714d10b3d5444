package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lms/core"
)

func TestEscapePattern(t *testing.T) {
	assert.Equal(t, "users/", escapePattern("users/"))
	assert.Equal(t, `a\*b\?\[c\]\\`, escapePattern(`a*b?[c]\`))
}

func TestStore_redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	conf := core.NewTestConfig()
	conf.AppName = "lms-test"
	conf.Database.Engine = core.EngineRedis
	conf.Database.DSN = "redis://" + addr + "/15"

	ctx := context.Background()
	s, err := Open(ctx, conf)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.client.FlushDB(ctx).Err())

	_, err = s.Get(ctx, "users/a")
	assert.Equal(t, core.ErrNotFound, err)

	require.NoError(t, s.Put(ctx, "users/a", []byte("1")))
	require.NoError(t, s.Put(ctx, "users/b", []byte("2")))
	require.NoError(t, s.Put(ctx, "other/c", []byte("3")))

	got, err := s.Get(ctx, "users/a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	keys, err := s.Keys(ctx, "users/")
	require.NoError(t, err)
	assert.Equal(t, []string{"users/a", "users/b"}, keys)

	require.NoError(t, s.Delete(ctx, "users/a"))
	_, err = s.Get(ctx, "users/a")
	assert.Equal(t, core.ErrNotFound, err)
}
