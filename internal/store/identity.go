package store

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

// SessionKeySuffix is appended to the configured key prefix to form
// the well-known session key.
const SessionKeySuffix = "session"

// Identity holds the user directory and the single authenticated
// session. Every other store resolves "current user" through it.
type Identity struct {
	mu       sync.RWMutex
	users    []models.User
	current  *models.User
	sessions kvstore.Store
	key      string
	logger   *zap.Logger
}

// NewIdentity builds the store from a directory snapshot and attempts
// to restore a persisted session. The persisted record is only trusted
// when its username carries the prefix its claimed role implies and the
// account still exists; the session is then re-copied from the live
// directory entry so later directory edits survive a restart.
func NewIdentity(users []models.User, sessions kvstore.Store, keyPrefix string, logger *zap.Logger) *Identity {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Identity{
		users:    append([]models.User(nil), users...),
		sessions: sessions,
		key:      keyPrefix + SessionKeySuffix,
		logger:   logger,
	}
	s.restore()
	return s
}

func (s *Identity) restore() {
	if s.sessions == nil {
		return
	}
	var saved models.SessionRecord
	found, err := s.sessions.Get(context.Background(), s.key, &saved)
	if err != nil || !found {
		return
	}
	if !strings.HasPrefix(saved.Username, saved.Role.Prefix()) {
		s.logger.Warn("persisted session rejected", zap.String("username", saved.Username))
		return
	}
	for i := range s.users {
		if s.users[i].Username == saved.Username {
			u := s.users[i]
			s.current = &u
			return
		}
	}
}

// Login authenticates against the directory by exact string match and,
// on success, stores a copy of the entry as the current session and
// persists it. Failures are typed: ErrAccountNotFound when the
// username is unknown, ErrInvalidPassword otherwise.
func (s *Identity) Login(ctx context.Context, username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry *models.User
	for i := range s.users {
		if s.users[i].Username == username {
			entry = &s.users[i]
			break
		}
	}
	if entry == nil {
		return models.User{}, appErrors.ErrAccountNotFound
	}
	if entry.Password != password {
		return models.User{}, appErrors.ErrInvalidPassword
	}

	u := *entry
	s.current = &u
	s.persistLocked(ctx)
	return u, nil
}

// Logout clears the session in memory and in the durable cache. It is
// idempotent; logging out with no session does nothing.
func (s *Identity) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if s.sessions != nil {
		_ = s.sessions.Delete(ctx, s.key)
	}
}

// CurrentUser returns a copy of the authenticated account, if any.
func (s *Identity) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a session is active.
func (s *Identity) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Role returns the active session's role.
func (s *Identity) Role() (models.Role, bool) {
	u, ok := s.CurrentUser()
	if !ok {
		return "", false
	}
	return u.Role, true
}

// Users returns a copy of the directory.
func (s *Identity) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.User(nil), s.users...)
}

// SetDisplayName updates a directory entry's display name. Profile
// edits flow through here so a restored session sees the new name.
// When the edited account is the active session, the live copy and the
// persisted record are refreshed too.
func (s *Identity) SetDisplayName(ctx context.Context, username, name string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			s.users[i].Name = name
			if s.current != nil && s.current.Username == username {
				s.current.Name = name
				s.persistLocked(ctx)
			}
			return OutcomeApplied
		}
	}
	return OutcomeNotFound
}

func (s *Identity) persistLocked(ctx context.Context) {
	if s.sessions == nil || s.current == nil {
		return
	}
	record := models.SessionRecord{
		Username: s.current.Username,
		Password: s.current.Password,
		Role:     s.current.Role,
		Name:     s.current.Name,
	}
	_ = s.sessions.Set(ctx, s.key, record)
}
