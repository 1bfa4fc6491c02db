package store

import (
	"sync"

	"github.com/marcriv/campushub-api/internal/models"
)

// TeacherProfiles stores teacher biographical records keyed by
// username. Updating a username without a record is a no-op, never an
// implicit create.
type TeacherProfiles struct {
	mu       sync.RWMutex
	profiles map[string]models.TeacherProfile
	identity identitySource
}

// NewTeacherProfiles builds the store from a seed map.
func NewTeacherProfiles(seed map[string]models.TeacherProfile, identity identitySource) *TeacherProfiles {
	profiles := make(map[string]models.TeacherProfile, len(seed))
	for uname, p := range seed {
		profiles[uname] = p
	}
	return &TeacherProfiles{profiles: profiles, identity: identity}
}

// Current returns the active session's profile, if one exists.
func (t *TeacherProfiles) Current() (models.TeacherProfile, bool) {
	user, ok := t.identity.CurrentUser()
	if !ok {
		return models.TeacherProfile{}, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.profiles[user.Username]
	return p, ok
}

// Update merges the non-nil fields into the active session's profile.
// A missing profile yields OutcomeUnchanged, a missing session
// OutcomeNotFound.
func (t *TeacherProfiles) Update(upd models.TeacherProfileUpdate) Outcome {
	user, ok := t.identity.CurrentUser()
	if !ok {
		return OutcomeNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.profiles[user.Username]
	if !ok {
		return OutcomeUnchanged
	}
	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.Department != nil {
		p.Department = *upd.Department
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.PhotoURL != nil {
		p.PhotoURL = *upd.PhotoURL
	}
	t.profiles[user.Username] = p
	return OutcomeApplied
}

// SetPhoto replaces only the photo URL.
func (t *TeacherProfiles) SetPhoto(url string) Outcome {
	return t.Update(models.TeacherProfileUpdate{PhotoURL: &url})
}

// StudentProfiles is the student counterpart of TeacherProfiles.
type StudentProfiles struct {
	mu       sync.RWMutex
	profiles map[string]models.StudentProfile
	identity identitySource
}

// NewStudentProfiles builds the store from a seed map.
func NewStudentProfiles(seed map[string]models.StudentProfile, identity identitySource) *StudentProfiles {
	profiles := make(map[string]models.StudentProfile, len(seed))
	for uname, p := range seed {
		profiles[uname] = p
	}
	return &StudentProfiles{profiles: profiles, identity: identity}
}

// Current returns the active session's profile, if one exists.
func (s *StudentProfiles) Current() (models.StudentProfile, bool) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return models.StudentProfile{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[user.Username]
	return p, ok
}

// Update merges the non-nil fields into the active session's profile.
func (s *StudentProfiles) Update(upd models.StudentProfileUpdate) Outcome {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return OutcomeNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[user.Username]
	if !ok {
		return OutcomeUnchanged
	}
	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.YearLevel != nil {
		p.YearLevel = *upd.YearLevel
	}
	if upd.Program != nil {
		p.Program = *upd.Program
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.PhotoURL != nil {
		p.PhotoURL = *upd.PhotoURL
	}
	s.profiles[user.Username] = p
	return OutcomeApplied
}

// SetPhoto replaces only the photo URL.
func (s *StudentProfiles) SetPhoto(url string) Outcome {
	return s.Update(models.StudentProfileUpdate{PhotoURL: &url})
}
