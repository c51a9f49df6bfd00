package types

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid "+paramName).WithDetail("value", paramStr))
		return 0, false
	}
	return uint(value), true
}

// BindOrError binds a JSON or form body into target
// Returns false and sends error response if binding fails
func BindOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBind(target); err != nil {
		log.Printf("[WARN] Invalid request body on %s: %v", c.FullPath(), err)
		SendError(c, bindError(err))
		return false
	}
	return true
}

// bindError names the first field that failed validation. Malformed bodies
// are reported against the body as a whole.
func bindError(err error) *apperrors.AppError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.ValidationError(strings.ToLower(fe.Field()), fe.Tag())
	}
	return apperrors.ValidationError("body", err.Error())
}

// SendError writes the status and message carried by err. Errors outside the
// application taxonomy are reported as a bad request with a generic message.
func SendError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	message := apperrors.GetMessage(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s failed with %s: %v", c.Request.Method, c.Request.URL.Path, apperrors.GetCode(err), err)
		status = http.StatusBadRequest
		message = "the request could not be completed"
	}
	c.JSON(status, ErrorResponse{Message: message})
}
