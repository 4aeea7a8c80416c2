package middleware

import (
	"errors"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/pkg/apperr"
	"github.com/wiratama/expense-tracker-api/pkg/response"
)

// Abort records err on the context and stops the chain; the normalizer
// turns it into the client-facing envelope. Handlers and middleware never
// write error bodies themselves.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorNormalizer is the single boundary that maps the error taxonomy to
// HTTP responses. Operational errors surface their message with status
// "fail"; internal errors are logged and, in production, reduced to a
// generic message with status "error".
func ErrorNormalizer(logger *logrus.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := apperr.KindOf(err)
		status := kind.Status()

		env := response.ErrorEnvelope{Status: "fail"}
		if kind == apperr.Internal {
			env.Status = "error"
		}

		var appErr *apperr.Error
		switch {
		case kind != apperr.Internal && errors.As(err, &appErr):
			env.Message = appErr.Message
		case production:
			env.Message = "Something went very wrong"
		default:
			env.Message = err.Error()
		}

		if kind == apperr.Internal {
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
				"error":      err.Error(),
			}).Error("unhandled error")
		}

		if !production {
			env.Stack = string(debug.Stack())
		}

		c.JSON(status, env)
	}
}
