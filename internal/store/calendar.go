package store

import (
	"sync"

	"github.com/marcriv/campushub-api/internal/models"
)

// Calendar keeps a per-username list of dated events. Event ids are
// scoped to one user's list: the next id is the last element's id + 1,
// independent of every other user's list.
type Calendar struct {
	mu       sync.RWMutex
	events   map[string][]models.CalendarEvent
	identity identitySource
}

// NewCalendar builds the store from seed lists keyed by username.
func NewCalendar(seed map[string][]models.CalendarEvent, identity identitySource) *Calendar {
	events := make(map[string][]models.CalendarEvent, len(seed))
	for uname, list := range seed {
		events[uname] = append([]models.CalendarEvent(nil), list...)
	}
	return &Calendar{events: events, identity: identity}
}

// MyEvents returns the current user's events; an unknown or absent
// username yields an empty list.
func (c *Calendar) MyEvents() []models.CalendarEvent {
	user, ok := c.identity.CurrentUser()
	if !ok {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]models.CalendarEvent(nil), c.events[user.Username]...)
}

// AddEvent appends an event to the current user's list and returns it
// with its assigned id. The boolean is false when no session is active.
func (c *Calendar) AddEvent(evt models.CalendarEvent) (models.CalendarEvent, bool) {
	user, ok := c.identity.CurrentUser()
	if !ok {
		return models.CalendarEvent{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.events[user.Username]
	nextID := 1
	if len(list) > 0 {
		nextID = list[len(list)-1].ID + 1
	}
	evt.ID = nextID
	c.events[user.Username] = append(list, evt)
	return evt, true
}
