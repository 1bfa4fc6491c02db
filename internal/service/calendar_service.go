package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type calendarStore interface {
	MyEvents() []models.CalendarEvent
	AddEvent(evt models.CalendarEvent) (models.CalendarEvent, bool)
}

// CalendarService exposes the personal calendar use cases.
type CalendarService struct {
	calendar  calendarStore
	session   sessionReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs a CalendarService instance.
func NewCalendarService(calendar calendarStore, session sessionReader, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CalendarService{calendar: calendar, session: session, validator: validate, logger: logger}
}

// MyEvents returns the active session's calendar.
func (s *CalendarService) MyEvents() ([]models.CalendarEvent, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return s.calendar.MyEvents(), nil
}

// AddEvent appends an event to the active session's calendar.
func (s *CalendarService) AddEvent(req models.CalendarEventRequest) (models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.CalendarEvent{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	evt, ok := s.calendar.AddEvent(models.CalendarEvent{
		Title:      req.Title,
		Date:       req.Date,
		Type:       req.Type,
		Time:       req.Time,
		IsDeadline: req.IsDeadline,
	})
	if !ok {
		return models.CalendarEvent{}, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return evt, nil
}
