package storage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
)

const userKeyPrefix = "users/"

type userRepository struct {
	store core.Store
}

func NewUserRepository(store core.Store) auth.Repository {
	return &userRepository{store: store}
}

func userKey(email string) string {
	return userKeyPrefix + strings.ToLower(email)
}

func (repo *userRepository) SaveUser(ctx context.Context, usr auth.User) error {
	data, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "encoding user")
	}
	return repo.store.Put(ctx, userKey(usr.Email), data)
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]auth.User, error) {
	keys, err := repo.store.Keys(ctx, userKeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "listing user keys")
	}

	users := make([]auth.User, 0, len(keys))
	for _, key := range keys {
		data, err := repo.store.Get(ctx, key)
		if err != nil {
			if err == core.ErrNotFound { // deleted meanwhile
				continue
			}
			return nil, errors.Wrapf(err, "getting %s", key)
		}
		var usr auth.User
		if err := json.Unmarshal(data, &usr); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", key)
		}
		users = append(users, usr)
	}
	return users, nil
}
