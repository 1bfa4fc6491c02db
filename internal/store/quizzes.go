package store

import (
	"sync"

	"github.com/marcriv/campushub-api/internal/models"
)

// QuizRoster holds per-username quiz summaries for both views. The
// data is read-only mock content in the current scope; there are no
// mutation operations.
type QuizRoster struct {
	mu       sync.RWMutex
	teaching map[string][]models.TeacherQuiz
	assigned map[string][]models.StudentQuiz
	identity identitySource
}

// NewQuizRoster builds the store from seed maps keyed by username.
func NewQuizRoster(teaching map[string][]models.TeacherQuiz, assigned map[string][]models.StudentQuiz, identity identitySource) *QuizRoster {
	t := make(map[string][]models.TeacherQuiz, len(teaching))
	for uname, list := range teaching {
		t[uname] = append([]models.TeacherQuiz(nil), list...)
	}
	a := make(map[string][]models.StudentQuiz, len(assigned))
	for uname, list := range assigned {
		a[uname] = append([]models.StudentQuiz(nil), list...)
	}
	return &QuizRoster{teaching: t, assigned: a, identity: identity}
}

// MyTeacherQuizzes returns the current user's teaching-side summaries.
func (q *QuizRoster) MyTeacherQuizzes() []models.TeacherQuiz {
	user, ok := q.identity.CurrentUser()
	if !ok {
		return nil
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	return append([]models.TeacherQuiz(nil), q.teaching[user.Username]...)
}

// MyStudentQuizzes returns the current user's assigned-quiz summaries.
func (q *QuizRoster) MyStudentQuizzes() []models.StudentQuiz {
	user, ok := q.identity.CurrentUser()
	if !ok {
		return nil
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	return append([]models.StudentQuiz(nil), q.assigned[user.Username]...)
}

// SubmissionCount sums submitted counts across every teaching-side
// quiz (dashboard stats).
func (q *QuizRoster) SubmissionCount() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	total := 0
	for _, list := range q.teaching {
		for _, quiz := range list {
			total += quiz.Submitted
		}
	}
	return total
}
