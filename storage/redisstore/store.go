package redisstore

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/lms/core"
)

const scanCount = 100

// Store keeps entries as plain Redis strings under a namespace.
type Store struct {
	client    *redis.Client
	namespace string
}

var _ core.Store = (*Store)(nil)

// Open connects to the Redis server at the configured DSN (redis://...).
func Open(ctx context.Context, conf *core.Config) (*Store, error) {
	opts, err := redis.ParseURL(conf.Database.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}
	if conf.Database.MaxOpenConns > 0 {
		opts.PoolSize = conf.Database.MaxOpenConns
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Store{client: client, namespace: core.CleanString(conf.AppName, true /* lower */) + ":"}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.namespace+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, core.ErrNotFound
		}
		return nil, errors.Wrap(err, "getting entry")
	}
	return val, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.namespace+key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "setting entry")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.namespace+key).Err(); err != nil {
		return errors.Wrap(err, "deleting entry")
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, s.namespace+escapePattern(prefix)+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(s.namespace):])
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning keys")
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// escapePattern escapes the glob characters understood by SCAN MATCH.
func escapePattern(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
