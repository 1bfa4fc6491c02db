package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

type stubIdentity struct {
	user models.User
	ok   bool
}

func (s *stubIdentity) CurrentUser() (models.User, bool) { return s.user, s.ok }

func teacherSession(name string) *stubIdentity {
	return &stubIdentity{user: models.User{Username: "0112345678", Role: models.RoleTeacher, Name: name}, ok: true}
}

func studentSession(username string) *stubIdentity {
	return &stubIdentity{user: models.User{Username: username, Role: models.RoleStudent, Name: "Chitoge Kirisaki"}, ok: true}
}

func newTestCatalog(t *testing.T, identity identitySource) (*CourseCatalog, *SectionRegistry) {
	t.Helper()
	registry := NewSectionRegistry(SeedSections(), kvstore.NewMemory(), testKeyPrefix, nil)
	return NewCourseCatalog(SeedCourses(), registry, identity), registry
}

func TestCourseCatalogDerivedCounts(t *testing.T) {
	catalog, registry := newTestCatalog(t, &stubIdentity{})

	course, found := catalog.Course(1)
	require.True(t, found)
	assert.Equal(t, 3, course.Students)

	// course 6 spans sections 1 and 5
	course, found = catalog.Course(6)
	require.True(t, found)
	assert.Equal(t, 6, course.Students)

	// unlinked course has no section-derived students
	course, found = catalog.Course(4)
	require.True(t, found)
	assert.Equal(t, 0, course.Students)

	// counts track the link table, not a stored value
	require.Equal(t, OutcomeApplied, registry.Unlink(context.Background(), 1, 1))
	course, _ = catalog.Course(1)
	assert.Equal(t, 0, course.Students)
}

func TestCourseCatalogMyClasses(t *testing.T) {
	t.Run("teacher matches on display name", func(t *testing.T) {
		catalog, _ := newTestCatalog(t, teacherSession("Donald Francisco"))

		classes := catalog.MyClasses()
		require.Len(t, classes, 4)
		for _, c := range classes {
			assert.Equal(t, "Donald Francisco", c.Teacher)
		}
	})

	t.Run("student matches the direct enrollment list", func(t *testing.T) {
		catalog, _ := newTestCatalog(t, studentSession("0212345678"))

		classes := catalog.MyClasses()
		require.Len(t, classes, 5)
		// direct enrollment, not section membership: course 1's count is
		// section-derived while its population comes from the legacy list
		assert.Equal(t, 1, classes[0].ID)
		assert.Equal(t, 3, classes[0].Students)
	})

	t.Run("student outside every list", func(t *testing.T) {
		catalog, _ := newTestCatalog(t, studentSession("0224444444"))
		assert.Empty(t, catalog.MyClasses())
	})

	t.Run("no session", func(t *testing.T) {
		catalog, _ := newTestCatalog(t, &stubIdentity{})
		assert.Empty(t, catalog.MyClasses())
	})
}

func TestCourseCatalogAddCourse(t *testing.T) {
	catalog, _ := newTestCatalog(t, &stubIdentity{})

	id := catalog.AddCourse(models.Course{Code: "CS501", Name: "Compilers", Teacher: "Alice Mao", Color: "cyan"})
	assert.Equal(t, 8, id)
	assert.Equal(t, 8, catalog.Len())

	course, found := catalog.Course(8)
	require.True(t, found)
	assert.Equal(t, "Compilers", course.Name)
	assert.Equal(t, 0, course.Students)
}
