package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog-api/internal/apperror"
)

// ErrorResponse is the JSON body rendered for failed requests.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// ErrorHandler renders the last error attached to the context as a JSON response.
// Only server errors are logged; client errors are expected outcomes.
// When showStack is set the captured stack trace is included in the body.
func ErrorHandler(showStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		status := appErr.Status()
		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.Any("err", appErr.Unwrap()),
				slog.String("stack", appErr.Stack()),
			)
		}

		if c.Writer.Written() {
			return
		}

		body := ErrorResponse{
			Error:   appErr.Kind.String(),
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if showStack {
			body.Stack = appErr.Stack()
		}
		c.JSON(status, body)
	}
}
