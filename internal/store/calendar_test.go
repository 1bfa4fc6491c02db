package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
)

func TestCalendarMyEvents(t *testing.T) {
	t.Run("seeded user", func(t *testing.T) {
		c := NewCalendar(SeedCalendarEvents(), teacherSession("Donald Francisco"))
		events := c.MyEvents()
		require.Len(t, events, 4)
		assert.Equal(t, "Quiz 1 Due", events[0].Title)
	})

	t.Run("user without events", func(t *testing.T) {
		c := NewCalendar(SeedCalendarEvents(), studentSession("0221111111"))
		assert.Empty(t, c.MyEvents())
	})

	t.Run("no session", func(t *testing.T) {
		c := NewCalendar(SeedCalendarEvents(), &stubIdentity{})
		assert.Empty(t, c.MyEvents())
	})
}

func TestCalendarAddEvent(t *testing.T) {
	t.Run("ids are per-user", func(t *testing.T) {
		seed := SeedCalendarEvents()

		teacher := NewCalendar(seed, teacherSession("Donald Francisco"))
		evt, ok := teacher.AddEvent(models.CalendarEvent{Title: "Office Hours", Date: "2026-09-01", Type: models.EventOther, Time: "10:00"})
		require.True(t, ok)
		assert.Equal(t, 5, evt.ID)

		// a fresh user's list starts at id 1, regardless of other lists
		fresh := NewCalendar(seed, studentSession("0221111111"))
		evt, ok = fresh.AddEvent(models.CalendarEvent{Title: "Exam Review", Date: "2026-09-02", Type: models.EventOther})
		require.True(t, ok)
		assert.Equal(t, 1, evt.ID)
		assert.Len(t, fresh.MyEvents(), 1)
	})

	t.Run("no session", func(t *testing.T) {
		c := NewCalendar(nil, &stubIdentity{})
		_, ok := c.AddEvent(models.CalendarEvent{Title: "Nope"})
		assert.False(t, ok)
	})
}

func TestQuizRoster(t *testing.T) {
	t.Run("teaching view", func(t *testing.T) {
		q := NewQuizRoster(SeedTeacherQuizzes(), SeedStudentQuizzes(), teacherSession("Donald Francisco"))
		require.Len(t, q.MyTeacherQuizzes(), 5)
		assert.Empty(t, q.MyStudentQuizzes())
	})

	t.Run("assigned view", func(t *testing.T) {
		q := NewQuizRoster(SeedTeacherQuizzes(), SeedStudentQuizzes(), studentSession("0212345678"))
		require.Len(t, q.MyStudentQuizzes(), 4)
		assert.Empty(t, q.MyTeacherQuizzes())
	})

	t.Run("submission count", func(t *testing.T) {
		q := NewQuizRoster(SeedTeacherQuizzes(), SeedStudentQuizzes(), &stubIdentity{})
		assert.Equal(t, 49, q.SubmissionCount())
	})
}
