package middleware

import (
	"net/http"

	"resource_management/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPanic = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a panic into a 500 envelope and logs the recovered value.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.Error("Recovered from panic",
				zap.Any("panic", recovered),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.AbortWithStatusJSON(errPanic.HTTPStatus, errPanic.ToHTTPError())
	})
}
