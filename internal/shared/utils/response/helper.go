package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campground/internal/shared/apperr"
)

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, StandardAPIResponse{
		Status:     "success",
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// Error writes an error envelope with the given status code.
func Error(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, StandardAPIResponse{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		Errors:     errs,
	})
}

// FromError maps a service-layer error to the envelope. Typed apperr errors
// keep their status code and field detail; anything else is a 500.
func FromError(c *gin.Context, err error) {
	if appErr := apperr.From(err); appErr != nil {
		var details interface{}
		if appErr.Field != "" {
			details = gin.H{appErr.Field: appErr.Err.Error()}
		}
		Error(c, appErr.HTTPStatusCode, appErr.Err.Error(), details)
		return
	}
	Error(c, http.StatusInternalServerError, "internal server error", nil)
}
