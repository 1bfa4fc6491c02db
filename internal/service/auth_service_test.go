package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type mockIdentityStore struct {
	loginUser  models.User
	loginErr   error
	current    *models.User
	loggedOut  bool
	lastLogin  [2]string
}

func (m *mockIdentityStore) Login(_ context.Context, username, password string) (models.User, error) {
	m.lastLogin = [2]string{username, password}
	if m.loginErr != nil {
		return models.User{}, m.loginErr
	}
	m.current = &m.loginUser
	return m.loginUser, nil
}

func (m *mockIdentityStore) Logout(_ context.Context) {
	m.loggedOut = true
	m.current = nil
}

func (m *mockIdentityStore) CurrentUser() (models.User, bool) {
	if m.current == nil {
		return models.User{}, false
	}
	return *m.current, true
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		identity := &mockIdentityStore{
			loginUser: models.User{Username: "0112345678", Role: models.RoleTeacher, Name: "Donald Francisco"},
		}
		svc := NewAuthService(identity, nil, nil)

		res, err := svc.Login(ctx, models.LoginRequest{Username: "0112345678", Password: "teacher"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, res.Role)
		assert.Equal(t, "Donald Francisco", res.User.Name)
		assert.Equal(t, [2]string{"0112345678", "teacher"}, identity.lastLogin)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc := NewAuthService(&mockIdentityStore{}, nil, nil)

		_, err := svc.Login(ctx, models.LoginRequest{Username: "0112345678"})
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	})

	t.Run("store error passes through", func(t *testing.T) {
		identity := &mockIdentityStore{loginErr: appErrors.ErrInvalidPassword}
		svc := NewAuthService(identity, nil, nil)

		_, err := svc.Login(ctx, models.LoginRequest{Username: "0112345678", Password: "nope"})
		assert.ErrorIs(t, err, appErrors.ErrInvalidPassword)
	})
}

func TestAuthServiceMe(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		user := models.User{Username: "0212345678", Role: models.RoleStudent, Name: "Chitoge Kirisaki"}
		svc := NewAuthService(&mockIdentityStore{current: &user}, nil, nil)

		info, err := svc.Me()
		require.NoError(t, err)
		assert.Equal(t, "Chitoge Kirisaki", info.Name)
	})

	t.Run("no session", func(t *testing.T) {
		svc := NewAuthService(&mockIdentityStore{}, nil, nil)

		_, err := svc.Me()
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	identity := &mockIdentityStore{current: &models.User{Username: "0112345678"}}
	svc := NewAuthService(identity, nil, nil)

	svc.Logout(context.Background())
	assert.True(t, identity.loggedOut)
}
