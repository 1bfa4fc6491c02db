package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/store"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type sectionRegistry interface {
	Sections() []models.Section
	SectionsForCourse(courseID int) []models.Section
	Section(id int) (models.Section, bool)
	AddSection(ctx context.Context, sec models.Section, courseID int) int
	Link(ctx context.Context, sectionID, courseID int) store.Outcome
	Unlink(ctx context.Context, sectionID, courseID int) store.Outcome
	UpdateSection(ctx context.Context, id int, upd models.SectionUpdate) store.Outcome
	DeleteSection(ctx context.Context, id int) store.Outcome
	Schedule(courseID, sectionID int) (models.Schedule, bool)
	SetSchedule(ctx context.Context, courseID, sectionID int, day, timeOfDay, room string) store.Outcome
	RemoveSchedule(ctx context.Context, courseID, sectionID int) store.Outcome
}

type courseLookup interface {
	Course(id int) (models.Course, bool)
}

// SectionService exposes section, link-table and schedule use cases.
type SectionService struct {
	registry  sectionRegistry
	courses   courseLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSectionService constructs a SectionService instance.
func NewSectionService(registry sectionRegistry, courses courseLookup, validate *validator.Validate, logger *zap.Logger) *SectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SectionService{registry: registry, courses: courses, validator: validate, logger: logger}
}

// ListForCourse returns the sections linked to a course.
func (s *SectionService) ListForCourse(courseID int) ([]models.Section, error) {
	if _, found := s.courses.Course(courseID); !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return s.registry.SectionsForCourse(courseID), nil
}

// Create registers a section under the course and returns it.
func (s *SectionService) Create(ctx context.Context, courseID int, req models.SectionCreateRequest) (models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Section{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}
	if _, found := s.courses.Course(courseID); !found {
		return models.Section{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	id := s.registry.AddSection(ctx, models.Section{
		Name:             req.Name,
		Students:         req.Students,
		StudentUsernames: req.StudentUsernames,
	}, courseID)
	s.logger.Info("section created", zap.Int("id", id), zap.Int("course_id", courseID))

	sec, found := s.registry.Section(id)
	if !found {
		return models.Section{}, appErrors.Clone(appErrors.ErrInternal, "created section missing from registry")
	}
	return sec, nil
}

// Link associates an existing section with a course. Re-linking an
// existing pair succeeds without effect.
func (s *SectionService) Link(ctx context.Context, courseID, sectionID int) error {
	if _, found := s.courses.Course(courseID); !found {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if _, found := s.registry.Section(sectionID); !found {
		return appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	s.registry.Link(ctx, sectionID, courseID)
	return nil
}

// Unlink dissociates a section from a course, dropping the pair's
// schedule with it. Unlinking an absent pair is a no-op.
func (s *SectionService) Unlink(ctx context.Context, courseID, sectionID int) error {
	s.registry.Unlink(ctx, sectionID, courseID)
	return nil
}

// Update merges a partial mutation into a section.
func (s *SectionService) Update(ctx context.Context, id int, req models.SectionUpdateRequest) (models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Section{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}

	outcome := s.registry.UpdateSection(ctx, id, models.SectionUpdate{
		Name:             req.Name,
		Students:         req.Students,
		StudentUsernames: req.StudentUsernames,
	})
	if outcome == store.OutcomeNotFound {
		return models.Section{}, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}

	sec, _ := s.registry.Section(id)
	return sec, nil
}

// Delete removes a section together with its links and schedules.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	if s.registry.DeleteSection(ctx, id) == store.OutcomeNotFound {
		return appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	s.logger.Info("section deleted", zap.Int("id", id))
	return nil
}

// GetSchedule returns the meeting slot for a course-section pair.
func (s *SectionService) GetSchedule(courseID, sectionID int) (models.Schedule, error) {
	sch, found := s.registry.Schedule(courseID, sectionID)
	if !found {
		return models.Schedule{}, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
	}
	return sch, nil
}

// SetSchedule upserts the meeting slot for a course-section pair.
func (s *SectionService) SetSchedule(ctx context.Context, courseID, sectionID int, req models.ScheduleRequest) (models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Schedule{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	if _, found := s.courses.Course(courseID); !found {
		return models.Schedule{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if _, found := s.registry.Section(sectionID); !found {
		return models.Schedule{}, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}

	s.registry.SetSchedule(ctx, courseID, sectionID, req.Day, req.Time, req.Room)
	sch, _ := s.registry.Schedule(courseID, sectionID)
	return sch, nil
}

// RemoveSchedule clears the slot for a pair. Removing an absent slot is
// a no-op.
func (s *SectionService) RemoveSchedule(ctx context.Context, courseID, sectionID int) error {
	s.registry.RemoveSchedule(ctx, courseID, sectionID)
	return nil
}
