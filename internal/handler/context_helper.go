package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/pkg/response"
)

// intParam parses a numeric path parameter, writing a validation error
// and returning false when it is malformed.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, name+" must be an integer"))
		return 0, false
	}
	return value, true
}
