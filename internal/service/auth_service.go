package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type identityStore interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout(ctx context.Context)
	CurrentUser() (models.User, bool)
}

// AuthService provides the session use cases over the identity store.
type AuthService struct {
	identity  identityStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(identity identityStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{identity: identity, validator: validate, logger: logger}
}

// Login authenticates a directory account and activates its session.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.identity.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session started", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return &models.LoginResponse{
		User: models.UserInfo{Username: user.Username, Name: user.Name, Role: user.Role},
		Role: user.Role,
	}, nil
}

// Logout ends the active session. It succeeds even without one.
func (s *AuthService) Logout(ctx context.Context) {
	s.identity.Logout(ctx)
}

// Me returns the authenticated account's public info.
func (s *AuthService) Me() (models.UserInfo, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return models.UserInfo{}, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return models.UserInfo{Username: user.Username, Name: user.Name, Role: user.Role}, nil
}
