package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/pkg/response"
)

// QuizHandler wires HTTP endpoints to the quiz service.
type QuizHandler struct {
	service *service.QuizService
}

// NewQuizHandler creates a new handler.
func NewQuizHandler(svc *service.QuizService) *QuizHandler {
	return &QuizHandler{service: svc}
}

// Teaching godoc
// @Summary List quizzes the current user is running
// @Tags Quizzes
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/quizzes/teaching [get]
func (h *QuizHandler) Teaching(c *gin.Context) {
	quizzes, err := h.service.Teaching()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quizzes, nil)
}

// Assigned godoc
// @Summary List quizzes assigned to the current user
// @Tags Quizzes
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/quizzes/assigned [get]
func (h *QuizHandler) Assigned(c *gin.Context) {
	quizzes, err := h.service.Assigned()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quizzes, nil)
}
