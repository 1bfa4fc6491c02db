package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/pkg/response"
)

// ExportHandler serves rendered roster and schedule downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Roster godoc
// @Summary Download a course roster
// @Description Renders every member of every linked section as csv or pdf
// @Tags Exports
// @Produce octet-stream
// @Param id path int true "Course ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id}/roster/export [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	file, err := h.service.Roster(courseID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

// Schedules godoc
// @Summary Download all class schedules
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /schedules/export [get]
func (h *ExportHandler) Schedules(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	file, err := h.service.Schedules(format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

func serveFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(200, file.ContentType, file.Payload)
}
