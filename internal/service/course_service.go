package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type courseCatalog interface {
	AllCourses() []models.Course
	Course(id int) (models.Course, bool)
	MyClasses() []models.Course
	AddCourse(course models.Course) int
}

type sessionReader interface {
	CurrentUser() (models.User, bool)
}

// CourseService exposes the course catalog use cases.
type CourseService struct {
	catalog   courseCatalog
	session   sessionReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(catalog courseCatalog, session sessionReader, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{catalog: catalog, session: session, validator: validate, logger: logger}
}

// List returns every course with derived enrollment counts.
func (s *CourseService) List() []models.Course {
	return s.catalog.AllCourses()
}

// Get returns one course by id.
func (s *CourseService) Get(id int) (models.Course, error) {
	course, found := s.catalog.Course(id)
	if !found {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// MyClasses returns the courses visible to the active session.
func (s *CourseService) MyClasses() ([]models.Course, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return s.catalog.MyClasses(), nil
}

// Create adds a course to the catalog and returns it with its id.
func (s *CourseService) Create(req models.CourseCreateRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Teacher:     req.Teacher,
		Description: req.Description,
		Color:       req.Color,
	}
	id := s.catalog.AddCourse(course)
	s.logger.Info("course created", zap.Int("id", id), zap.String("code", req.Code))

	created, found := s.catalog.Course(id)
	if !found {
		return models.Course{}, appErrors.Clone(appErrors.ErrInternal, "created course missing from catalog")
	}
	return created, nil
}
