package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/internal/store"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

func newCourseFixture(t *testing.T) (*CourseService, *store.Identity) {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	registry := store.NewSectionRegistry(store.SeedSections(), kvstore.NewMemory(), "test:", nil)
	catalog := store.NewCourseCatalog(store.SeedCourses(), registry, identity)
	return NewCourseService(catalog, identity, nil, nil), identity
}

func TestCourseServiceListGet(t *testing.T) {
	svc, _ := newCourseFixture(t)

	courses := svc.List()
	require.Len(t, courses, 7)
	assert.Equal(t, 3, courses[0].Students)

	course, err := svc.Get(6)
	require.NoError(t, err)
	assert.Equal(t, 6, course.Students)

	_, err = svc.Get(99)
	assertCode(t, err, appErrors.ErrNotFound.Code)
}

func TestCourseServiceMyClasses(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a session", func(t *testing.T) {
		svc, _ := newCourseFixture(t)
		_, err := svc.MyClasses()
		assertCode(t, err, appErrors.ErrUnauthorized.Code)
	})

	t.Run("teacher view", func(t *testing.T) {
		svc, identity := newCourseFixture(t)
		_, err := identity.Login(ctx, "0112345678", "teacher")
		require.NoError(t, err)

		classes, err := svc.MyClasses()
		require.NoError(t, err)
		assert.Len(t, classes, 4)
	})

	t.Run("student view", func(t *testing.T) {
		svc, identity := newCourseFixture(t)
		_, err := identity.Login(ctx, "0212345678", "student")
		require.NoError(t, err)

		classes, err := svc.MyClasses()
		require.NoError(t, err)
		assert.Len(t, classes, 5)
	})
}

func TestCourseServiceCreate(t *testing.T) {
	svc, _ := newCourseFixture(t)

	course, err := svc.Create(models.CourseCreateRequest{Code: "CS501", Name: "Compilers", Teacher: "Alice Mao", Color: "cyan"})
	require.NoError(t, err)
	assert.Equal(t, 8, course.ID)
	assert.Equal(t, 0, course.Students)

	_, err = svc.Create(models.CourseCreateRequest{Name: "No Code"})
	assertCode(t, err, appErrors.ErrValidation.Code)
}
