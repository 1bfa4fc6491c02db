package store

import (
	"sync"

	"github.com/marcriv/campushub-api/internal/models"
)

// sectionSource is the slice of the section registry the catalog needs.
type sectionSource interface {
	SectionsForCourse(courseID int) []models.Section
}

// identitySource resolves the current session for "my"-scoped reads.
type identitySource interface {
	CurrentUser() (models.User, bool)
}

// CourseCatalog holds course definitions. Enrollment counts are a
// read-side projection over the section registry: every read recomputes
// them so link-table or membership changes are always reflected.
//
// The catalog is the non-persisted store variant; courses can be added
// but not deleted.
type CourseCatalog struct {
	mu       sync.RWMutex
	courses  []models.Course
	sections sectionSource
	identity identitySource
}

// NewCourseCatalog builds the catalog over injected section and
// identity sources.
func NewCourseCatalog(seed []models.Course, sections sectionSource, identity identitySource) *CourseCatalog {
	return &CourseCatalog{
		courses:  append([]models.Course(nil), seed...),
		sections: sections,
		identity: identity,
	}
}

// AllCourses returns every course with its derived enrollment count.
func (c *CourseCatalog) AllCourses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = c.withCount(course)
	}
	return out
}

// Course returns one course with its derived count.
func (c *CourseCatalog) Course(id int) (models.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, course := range c.courses {
		if course.ID == id {
			return c.withCount(course), true
		}
	}
	return models.Course{}, false
}

// MyClasses filters the catalog for the current session. Teachers match
// on display-name equality against the course's teacher field; students
// match against the legacy direct-enrollment list, NOT section
// membership. The two populations intentionally diverge from the
// enrollment count, which is section-derived — do not unify them here.
func (c *CourseCatalog) MyClasses() []models.Course {
	user, ok := c.identity.CurrentUser()
	if !ok {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Course
	for _, course := range c.courses {
		if user.Role == models.RoleTeacher {
			if course.Teacher == user.Name {
				out = append(out, c.withCount(course))
			}
			continue
		}
		for _, uname := range course.StudentUsernames {
			if uname == user.Username {
				out = append(out, c.withCount(course))
				break
			}
		}
	}
	return out
}

// AddCourse appends a course under the next id (max existing + 1) and
// returns the assigned id.
func (c *CourseCatalog) AddCourse(course models.Course) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	nextID := 0
	for _, existing := range c.courses {
		if existing.ID > nextID {
			nextID = existing.ID
		}
	}
	nextID++

	course.ID = nextID
	course.StudentUsernames = append([]string(nil), course.StudentUsernames...)
	c.courses = append(c.courses, course)
	return nextID
}

// Len reports the catalog size (dashboard stats).
func (c *CourseCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.courses)
}

func (c *CourseCatalog) withCount(course models.Course) models.Course {
	count := 0
	for _, sec := range c.sections.SectionsForCourse(course.ID) {
		count += len(sec.StudentUsernames)
	}
	course.Students = count
	course.StudentUsernames = append([]string(nil), course.StudentUsernames...)
	return course
}
