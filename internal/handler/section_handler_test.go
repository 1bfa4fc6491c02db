package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/internal/store"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

func newSectionHandler(t *testing.T) *SectionHandler {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	registry := store.NewSectionRegistry(store.SeedSections(), kvstore.NewMemory(), "test:", nil)
	catalog := store.NewCourseCatalog(store.SeedCourses(), registry, identity)
	return NewSectionHandler(service.NewSectionService(registry, catalog, nil, nil))
}

func TestSectionHandlerListForCourse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSectionHandler(t)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/courses/6/sections", nil)
		c.Params = gin.Params{{Key: "id", Value: "6"}}

		handler.ListForCourse(c)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CS31A")
		assert.Contains(t, w.Body.String(), "CS33A")
	})

	t.Run("unknown course", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/courses/99/sections", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		handler.ListForCourse(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/courses/abc/sections", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		handler.ListForCourse(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSectionHandlerSetSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSectionHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(models.ScheduleRequest{Day: "Friday", Time: "08:00", Room: "Room 110"})
	req, _ := http.NewRequest(http.MethodPut, "/courses/1/sections/1/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "sectionId", Value: "1"}}

	handler.SetSchedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Room 110")
}

func TestSectionHandlerUnlinkIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSectionHandler(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodDelete, "/courses/1/sections/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "sectionId", Value: "1"}}

		handler.Unlink(c)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
