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

func newProfileFixture(t *testing.T) (*ProfileService, *store.Identity) {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	teachers := store.NewTeacherProfiles(store.SeedTeacherProfiles(), identity)
	students := store.NewStudentProfiles(store.SeedStudentProfiles(), identity)
	return NewProfileService(teachers, students, identity, nil, nil), identity
}

func TestProfileServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a session", func(t *testing.T) {
		svc, _ := newProfileFixture(t)
		_, err := svc.Get()
		assertCode(t, err, appErrors.ErrUnauthorized.Code)
	})

	t.Run("teacher profile", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0112345678", "teacher")
		require.NoError(t, err)

		got, err := svc.Get()
		require.NoError(t, err)
		profile, ok := got.(models.TeacherProfile)
		require.True(t, ok)
		assert.Equal(t, "Information Technology", profile.Department)
	})

	t.Run("student profile", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0212345678", "student")
		require.NoError(t, err)

		got, err := svc.Get()
		require.NoError(t, err)
		profile, ok := got.(models.StudentProfile)
		require.True(t, ok)
		assert.Equal(t, "3rd Year", profile.YearLevel)
	})

	t.Run("account without a profile", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0111111111", "teacher")
		require.NoError(t, err)

		_, err = svc.Get()
		assertCode(t, err, appErrors.ErrNotFound.Code)
	})
}

func TestProfileServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges fields", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0212345678", "student")
		require.NoError(t, err)

		year := "4th Year"
		got, err := svc.Update(ctx, models.ProfileUpdateRequest{YearLevel: &year})
		require.NoError(t, err)
		profile := got.(models.StudentProfile)
		assert.Equal(t, "4th Year", profile.YearLevel)
		assert.Equal(t, "Chitoge", profile.FirstName)
	})

	t.Run("name edits reach the directory", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0112345678", "teacher")
		require.NoError(t, err)

		first := "Don"
		_, err = svc.Update(ctx, models.ProfileUpdateRequest{FirstName: &first})
		require.NoError(t, err)

		user, ok := identity.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "Don Francisco", user.Name)
	})

	t.Run("absent profile", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0111111111", "teacher")
		require.NoError(t, err)

		bio := "New bio"
		_, err = svc.Update(ctx, models.ProfileUpdateRequest{Bio: &bio})
		assertCode(t, err, appErrors.ErrNotFound.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, identity := newProfileFixture(t)
		_, err := identity.Login(ctx, "0212345678", "student")
		require.NoError(t, err)

		bad := "not-an-email"
		_, err = svc.Update(ctx, models.ProfileUpdateRequest{Email: &bad})
		assertCode(t, err, appErrors.ErrValidation.Code)
	})
}

func TestProfileServiceSetPhoto(t *testing.T) {
	ctx := context.Background()
	svc, identity := newProfileFixture(t)
	_, err := identity.Login(ctx, "0212345678", "student")
	require.NoError(t, err)

	got, err := svc.SetPhoto(ctx, models.PhotoRequest{URL: "https://example.com/me.png"})
	require.NoError(t, err)
	profile := got.(models.StudentProfile)
	assert.Equal(t, "https://example.com/me.png", profile.PhotoURL)

	_, err = svc.SetPhoto(ctx, models.PhotoRequest{URL: "not a url"})
	assertCode(t, err, appErrors.ErrValidation.Code)
}
