package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/response"
)

// Recovery turns a panic anywhere below it into the 500 envelope, passing the
// panic value through as the message.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			msg := fmt.Sprint(rec)
			if err, ok := rec.(error); ok {
				msg = err.Error()
			}

			log.Error("panic recovered",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.String("panic", msg),
				zap.Stack("stack"),
			)

			response.Abort(c, http.StatusInternalServerError, "Internal server error", msg)
		}()

		c.Next()
	}
}
