package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/servicehub/servicehub-api/internal/errors"
	"go.uber.org/zap"
)

// Recovery is the catch-all responder: any panic escaping a handler is
// logged and converted into a generic error response.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierrors.NewAPIError(apierrors.ErrCodeInternalError, "Internal server error"))
			}
		}()

		c.Next()
	}
}
