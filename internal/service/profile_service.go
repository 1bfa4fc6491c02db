package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/store"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type teacherProfileStore interface {
	Current() (models.TeacherProfile, bool)
	Update(upd models.TeacherProfileUpdate) store.Outcome
}

type studentProfileStore interface {
	Current() (models.StudentProfile, bool)
	Update(upd models.StudentProfileUpdate) store.Outcome
}

type directoryWriter interface {
	CurrentUser() (models.User, bool)
	SetDisplayName(ctx context.Context, username, name string) store.Outcome
}

// ProfileService exposes the biographical profile of the active
// session, dispatching on its role. Name edits propagate to the user
// directory so course ownership and session restores stay consistent.
type ProfileService struct {
	teachers  teacherProfileStore
	students  studentProfileStore
	directory directoryWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService instance.
func NewProfileService(teachers teacherProfileStore, students studentProfileStore, directory directoryWriter, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfileService{teachers: teachers, students: students, directory: directory, validator: validate, logger: logger}
}

// Get returns the active session's profile.
func (s *ProfileService) Get() (interface{}, error) {
	user, ok := s.directory.CurrentUser()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}

	if user.Role == models.RoleTeacher {
		profile, found := s.teachers.Current()
		if !found {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return profile, nil
	}

	profile, found := s.students.Current()
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	return profile, nil
}

// Update merges a partial mutation into the active session's profile
// and returns the result.
func (s *ProfileService) Update(ctx context.Context, req models.ProfileUpdateRequest) (interface{}, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	user, ok := s.directory.CurrentUser()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}

	if user.Role == models.RoleTeacher {
		outcome := s.teachers.Update(models.TeacherProfileUpdate{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			Bio:        req.Bio,
		})
		if outcome != store.OutcomeApplied {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		profile, _ := s.teachers.Current()
		s.syncDisplayName(ctx, user, req, profile.FirstName, profile.LastName)
		return profile, nil
	}

	outcome := s.students.Update(models.StudentProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		YearLevel: req.YearLevel,
		Program:   req.Program,
		Bio:       req.Bio,
	})
	if outcome != store.OutcomeApplied {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	profile, _ := s.students.Current()
	s.syncDisplayName(ctx, user, req, profile.FirstName, profile.LastName)
	return profile, nil
}

// SetPhoto replaces the active session's profile photo URL.
func (s *ProfileService) SetPhoto(ctx context.Context, req models.PhotoRequest) (interface{}, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid photo payload")
	}

	user, ok := s.directory.CurrentUser()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}

	if user.Role == models.RoleTeacher {
		if s.teachers.Update(models.TeacherProfileUpdate{PhotoURL: &req.URL}) != store.OutcomeApplied {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		profile, _ := s.teachers.Current()
		return profile, nil
	}

	if s.students.Update(models.StudentProfileUpdate{PhotoURL: &req.URL}) != store.OutcomeApplied {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	profile, _ := s.students.Current()
	return profile, nil
}

func (s *ProfileService) syncDisplayName(ctx context.Context, user models.User, req models.ProfileUpdateRequest, first, last string) {
	if req.FirstName == nil && req.LastName == nil {
		return
	}
	name := strings.TrimSpace(first + " " + last)
	if name == "" || name == user.Name {
		return
	}
	if s.directory.SetDisplayName(ctx, user.Username, name) != store.OutcomeApplied {
		s.logger.Warn("display name sync failed", zap.String("username", user.Username))
	}
}
