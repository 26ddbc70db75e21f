package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/config"
	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/logger"
)

// ErrorHandler maps errors attached via c.Error into the JSON envelope.
// Unknown errors are logged server-side and collapsed into a generic 500;
// development mode additionally includes the underlying message.
func ErrorHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail interface{}
			if len(appErr.Fields) > 0 {
				detail = appErr.Fields
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
			return
		}

		logger.Log.Error("unhandled error",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err,
		)
		internal := apperror.Internal(err)
		var detail interface{}
		if cfg.IsDevelopment() {
			detail = err.Error()
		}
		response.Error(c, internal.Code, internal.Message, detail)
	}
}
