package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
)

// RestrictTo permits only the listed roles. It must run after Protect;
// reaching it without an authenticated identity is a programming error in
// the route wiring and is reported as an internal failure, never as a
// client mistake.
func RestrictTo(allowed ...entity.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Abort(c, apperr.Internalf("RestrictTo invoked without an authenticated user"))
			return
		}
		if !u.UserType.OneOf(allowed...) {
			Abort(c, apperr.New(apperr.Forbidden, "You don't have access to this route"))
			return
		}
		c.Next()
	}
}
