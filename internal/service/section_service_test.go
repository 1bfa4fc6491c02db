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

func newSectionFixture(t *testing.T) (*SectionService, *store.SectionRegistry, *store.CourseCatalog) {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	registry := store.NewSectionRegistry(store.SeedSections(), kvstore.NewMemory(), "test:", nil)
	catalog := store.NewCourseCatalog(store.SeedCourses(), registry, identity)
	return NewSectionService(registry, catalog, nil, nil), registry, catalog
}

func assertCode(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, appErrors.FromError(err).Code)
}

func TestSectionServiceListForCourse(t *testing.T) {
	svc, _, _ := newSectionFixture(t)

	sections, err := svc.ListForCourse(6)
	require.NoError(t, err)
	assert.Len(t, sections, 2)

	_, err = svc.ListForCourse(99)
	assertCode(t, err, appErrors.ErrNotFound.Code)
}

func TestSectionServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSectionFixture(t)

	t.Run("success", func(t *testing.T) {
		sec, err := svc.Create(ctx, 4, models.SectionCreateRequest{Name: "CS44A", Students: 2, StudentUsernames: []string{"0221111111", "0222222222"}})
		require.NoError(t, err)
		assert.Equal(t, 6, sec.ID)

		linked, err := svc.ListForCourse(4)
		require.NoError(t, err)
		assert.Len(t, linked, 1)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.Create(ctx, 99, models.SectionCreateRequest{Name: "CS55A"})
		assertCode(t, err, appErrors.ErrNotFound.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, 4, models.SectionCreateRequest{})
		assertCode(t, err, appErrors.ErrValidation.Code)
	})
}

func TestSectionServiceLinkUnlink(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newSectionFixture(t)

	require.NoError(t, svc.Link(ctx, 4, 2))
	assert.Len(t, registry.SectionsForCourse(4), 1)

	// relinking the same pair still succeeds
	require.NoError(t, svc.Link(ctx, 4, 2))
	assert.Len(t, registry.SectionsForCourse(4), 1)

	assertCode(t, svc.Link(ctx, 99, 2), appErrors.ErrNotFound.Code)
	assertCode(t, svc.Link(ctx, 4, 99), appErrors.ErrNotFound.Code)

	require.NoError(t, svc.Unlink(ctx, 4, 2))
	assert.Empty(t, registry.SectionsForCourse(4))

	// unlinking an absent pair is not an error
	require.NoError(t, svc.Unlink(ctx, 4, 2))
}

func TestSectionServiceUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newSectionFixture(t)

	name := "CS31B"
	sec, err := svc.Update(ctx, 1, models.SectionUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "CS31B", sec.Name)

	_, err = svc.Update(ctx, 99, models.SectionUpdateRequest{Name: &name})
	assertCode(t, err, appErrors.ErrNotFound.Code)

	require.NoError(t, svc.Delete(ctx, 1))
	_, found := registry.Section(1)
	assert.False(t, found)

	assertCode(t, svc.Delete(ctx, 1), appErrors.ErrNotFound.Code)
}

func TestSectionServiceSchedules(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSectionFixture(t)

	sch, err := svc.GetSchedule(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Monday", sch.Day)

	_, err = svc.GetSchedule(4, 2)
	assertCode(t, err, appErrors.ErrNotFound.Code)

	sch, err = svc.SetSchedule(ctx, 4, 2, models.ScheduleRequest{Day: "Saturday", Time: "09:00", Room: "Room 201"})
	require.NoError(t, err)
	assert.Equal(t, "Saturday", sch.Day)

	_, err = svc.SetSchedule(ctx, 99, 2, models.ScheduleRequest{Day: "Saturday", Time: "09:00", Room: "Room 201"})
	assertCode(t, err, appErrors.ErrNotFound.Code)

	_, err = svc.SetSchedule(ctx, 4, 2, models.ScheduleRequest{Day: "Saturday"})
	assertCode(t, err, appErrors.ErrValidation.Code)

	require.NoError(t, svc.RemoveSchedule(ctx, 4, 2))
	_, err = svc.GetSchedule(4, 2)
	assertCode(t, err, appErrors.ErrNotFound.Code)

	// removing again is a no-op
	require.NoError(t, svc.RemoveSchedule(ctx, 4, 2))
}
