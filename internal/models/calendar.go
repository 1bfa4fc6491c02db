package models

// EventType classifies calendar entries.
type EventType string

const (
	EventQuiz    EventType = "quiz"
	EventHoliday EventType = "holiday"
	EventOther   EventType = "other"
)

// CalendarEvent is a dated entry in a user's personal calendar. IDs
// are monotonic within one user's list only; two users can both own an
// event with id 1.
type CalendarEvent struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Type       EventType `json:"type"`
	Time       string    `json:"time,omitempty"`
	IsDeadline bool      `json:"is_deadline,omitempty"`
}
