package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/service"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/pkg/response"
)

// SectionHandler wires HTTP endpoints to the section service.
type SectionHandler struct {
	service *service.SectionService
}

// NewSectionHandler creates a new handler.
func NewSectionHandler(svc *service.SectionService) *SectionHandler {
	return &SectionHandler{service: svc}
}

// ListForCourse godoc
// @Summary List sections linked to a course
// @Tags Sections
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/sections [get]
func (h *SectionHandler) ListForCourse(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}

	sections, err := h.service.ListForCourse(courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// Create godoc
// @Summary Create a section under a course
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body models.SectionCreateRequest true "Section payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/sections [post]
func (h *SectionHandler) Create(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req models.SectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section payload"))
		return
	}

	sec, err := h.service.Create(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sec)
}

// Link godoc
// @Summary Link an existing section to a course
// @Description Linking an already linked pair succeeds without effect
// @Tags Sections
// @Produce json
// @Param id path int true "Course ID"
// @Param sectionId path int true "Section ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/sections/{sectionId} [put]
func (h *SectionHandler) Link(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	sectionID, ok := intParam(c, "sectionId")
	if !ok {
		return
	}

	if err := h.service.Link(c.Request.Context(), courseID, sectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Unlink godoc
// @Summary Unlink a section from a course
// @Description Removes the pair and its schedule; absent pairs are a no-op
// @Tags Sections
// @Produce json
// @Param id path int true "Course ID"
// @Param sectionId path int true "Section ID"
// @Success 204 {object} response.Envelope
// @Router /courses/{id}/sections/{sectionId} [delete]
func (h *SectionHandler) Unlink(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	sectionID, ok := intParam(c, "sectionId")
	if !ok {
		return
	}

	if err := h.service.Unlink(c.Request.Context(), courseID, sectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Update godoc
// @Summary Update a section
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param payload body models.SectionUpdateRequest true "Partial section payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sections/{id} [patch]
func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req models.SectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section payload"))
		return
	}

	sec, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sec, nil)
}

// Delete godoc
// @Summary Delete a section
// @Description Removes the section with all its links and schedules
// @Tags Sections
// @Produce json
// @Param id path int true "Section ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sections/{id} [delete]
func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetSchedule godoc
// @Summary Get the schedule for a course-section pair
// @Tags Schedules
// @Produce json
// @Param id path int true "Course ID"
// @Param sectionId path int true "Section ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/sections/{sectionId}/schedule [get]
func (h *SectionHandler) GetSchedule(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	sectionID, ok := intParam(c, "sectionId")
	if !ok {
		return
	}

	sch, err := h.service.GetSchedule(courseID, sectionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sch, nil)
}

// SetSchedule godoc
// @Summary Set the schedule for a course-section pair
// @Description Replaces the existing slot or creates one
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param sectionId path int true "Section ID"
// @Param payload body models.ScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/sections/{sectionId}/schedule [put]
func (h *SectionHandler) SetSchedule(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	sectionID, ok := intParam(c, "sectionId")
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	sch, err := h.service.SetSchedule(c.Request.Context(), courseID, sectionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sch, nil)
}

// RemoveSchedule godoc
// @Summary Remove the schedule for a course-section pair
// @Tags Schedules
// @Produce json
// @Param id path int true "Course ID"
// @Param sectionId path int true "Section ID"
// @Success 204 {object} response.Envelope
// @Router /courses/{id}/sections/{sectionId}/schedule [delete]
func (h *SectionHandler) RemoveSchedule(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	sectionID, ok := intParam(c, "sectionId")
	if !ok {
		return
	}

	if err := h.service.RemoveSchedule(c.Request.Context(), courseID, sectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
