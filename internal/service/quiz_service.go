package service

import (
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
)

type quizRoster interface {
	MyTeacherQuizzes() []models.TeacherQuiz
	MyStudentQuizzes() []models.StudentQuiz
}

// QuizService exposes the per-user quiz views.
type QuizService struct {
	roster  quizRoster
	session sessionReader
	logger  *zap.Logger
}

// NewQuizService constructs a QuizService instance.
func NewQuizService(roster quizRoster, session sessionReader, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{roster: roster, session: session, logger: logger}
}

// Teaching returns the active session's teaching-side quizzes. A user
// without entries gets an empty list, whatever their role.
func (s *QuizService) Teaching() ([]models.TeacherQuiz, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return s.roster.MyTeacherQuizzes(), nil
}

// Assigned returns the active session's assigned quizzes.
func (s *QuizService) Assigned() ([]models.StudentQuiz, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	return s.roster.MyStudentQuizzes(), nil
}
