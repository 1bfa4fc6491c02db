package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/internal/store"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	registry := store.NewSectionRegistry(store.SeedSections(), kvstore.NewMemory(), "test:", nil)
	catalog := store.NewCourseCatalog(store.SeedCourses(), registry, identity)
	return NewExportService(catalog, registry, nil, nil, nil)
}

func TestExportServiceRoster(t *testing.T) {
	svc := newExportFixture(t)

	t.Run("csv lists each member once", func(t *testing.T) {
		file, err := svc.Roster(1, ExportFormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.True(t, strings.HasPrefix(file.Filename, "roster_CS401_"))

		lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
		// header plus the three members of section CS31A
		assert.Len(t, lines, 4)
		assert.Contains(t, lines[1], "0212345678")
	})

	t.Run("pdf renders", func(t *testing.T) {
		file, err := svc.Roster(1, ExportFormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.NotEmpty(t, file.Payload)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.Roster(99, ExportFormatCSV)
		assertCode(t, err, appErrors.ErrNotFound.Code)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := svc.Roster(1, ExportFormat("xlsx"))
		assertCode(t, err, appErrors.ErrValidation.Code)
	})
}

func TestExportServiceSchedules(t *testing.T) {
	svc := newExportFixture(t)

	file, err := svc.Schedules(ExportFormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
	// header plus six seeded schedule rows
	assert.Len(t, lines, 7)
	assert.Contains(t, string(file.Payload), "Room 505")
	assert.Contains(t, string(file.Payload), "CS201")
}
