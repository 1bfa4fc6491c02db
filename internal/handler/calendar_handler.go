package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/service"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/pkg/response"
)

// CalendarHandler wires HTTP endpoints to the calendar service.
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler creates a new handler.
func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// MyEvents godoc
// @Summary List the current user's calendar events
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/calendar [get]
func (h *CalendarHandler) MyEvents(c *gin.Context) {
	events, err := h.service.MyEvents()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// AddEvent godoc
// @Summary Add a calendar event for the current user
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body models.CalendarEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/calendar [post]
func (h *CalendarHandler) AddEvent(c *gin.Context) {
	var req models.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	evt, err := h.service.AddEvent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, evt)
}
