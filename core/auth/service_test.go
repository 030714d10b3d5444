package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lms/core"
)

type sliceRepository struct {
	users   []User
	saveErr error
}

func (repo *sliceRepository) SaveUser(_ context.Context, usr User) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	repo.users = append(repo.users, usr)
	return nil
}

func (repo *sliceRepository) QueryAllUsers(context.Context) ([]User, error) {
	return repo.users, nil
}

func newUser(email, pwd, name, role string) NewUser {
	return NewUser{Email: &email, Password: &pwd, Name: &name, Role: &role}
}

func setup(t *testing.T) (*Service, *sliceRepository) {
	ti, err := NewTokenIssuer(core.NewTestConfig())
	require.NoError(t, err)
	repo := new(sliceRepository)
	return NewService(repo, ti, "student"), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr, err := svc.Register(ctx, newUser("a@b.com", "x", "A", ""))
	require.NoError(t, err)
	assert.Equal(t, "student", usr.Role)
	assert.NotEmpty(t, usr.ID)
	assert.False(t, usr.RegisteredAt.IsZero())

	// duplicates are accepted
	_, err = svc.Register(ctx, newUser("A@B.com", "y", "A", "instructor"))
	require.NoError(t, err)

	users, err := svc.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "instructor", users[1].Role)
	assert.Equal(t, "A@B.com", users[1].Email)
	assert.Len(t, repo.users, 2)

	repo.saveErr = errors.New("disk full")
	_, err = svc.Register(ctx, newUser("c@d.com", "x", "C", ""))
	assert.EqualError(t, err, "saving user: disk full")
}

func TestService_Login(t *testing.T) {
	svc, repo := setup(t)

	sess, err := svc.Login(context.Background(), Credentials{Email: core.Ptr(" A@B.com"), Password: core.Ptr("")})
	require.NoError(t, err)
	assert.Equal(t, Session{Token: "jwt_token_here", User: SessionUser{Email: " A@B.com", Role: "student"}}, sess)
	assert.Empty(t, repo.users)
	assert.NoError(t, svc.Logout(context.Background()))
}

func TestNewUser_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	nu := newUser("lol", "", "", "")
	require.NoError(t, nu.Validate(validate))
	assert.Equal(t, newUser("lol", "", "", ""), nu)

	nu.Role = nil
	assert.Error(t, nu.Validate(validate))

	creds := Credentials{Email: core.Ptr("A@B.com"), Password: core.Ptr("")}
	assert.NoError(t, creds.Validate(validate))

	creds.Password = nil
	assert.Error(t, creds.Validate(validate))
}
