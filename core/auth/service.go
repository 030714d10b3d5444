package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
)

type (
	// Repository is the user directory. Saving an existing email overwrites it.
	Repository interface {
		SaveUser(ctx context.Context, usr User) error
		QueryAllUsers(ctx context.Context) ([]User, error)
	}

	Service struct {
		repo        Repository
		tokens      *TokenIssuer
		defaultRole string
	}
)

func NewService(repo Repository, tokens *TokenIssuer, defaultRole string) *Service {
	return &Service{
		repo:        repo,
		tokens:      tokens,
		defaultRole: defaultRole,
	}
}

// Register records the user in the directory. Duplicate emails are not checked
// and the password is dropped. An empty role falls back to the default one.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	role := core.Value(nu.Role)
	if role == "" {
		role = svc.defaultRole
	}
	usr := User{
		ID:           uuid.NewString(),
		Email:        core.Value(nu.Email),
		Name:         core.Value(nu.Name),
		Role:         role,
		RegisteredAt: time.Now().UTC(),
	}
	if err := svc.repo.SaveUser(ctx, usr); err != nil {
		return User{}, errors.Wrap(err, "saving user")
	}
	return usr, nil
}

// Login issues a token for the given email without checking the credentials.
// The email is echoed as sent.
func (svc *Service) Login(_ context.Context, creds Credentials) (Session, error) {
	email := core.Value(creds.Email)
	token, err := svc.tokens.Issue(email, svc.defaultRole)
	if err != nil {
		return Session{}, errors.Wrap(err, "issuing token")
	}
	return Session{
		Token: token,
		User:  SessionUser{Email: email, Role: svc.defaultRole},
	}, nil
}

// Logout has no session to invalidate.
func (svc *Service) Logout(context.Context) error {
	return nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}
