package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	repo "github.com/wiratama/expense-tracker-api/internal/domain/repository"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

const (
	// CtxUserKey holds the authenticated *entity.User (password cleared).
	CtxUserKey = "currentUser"
	// CtxUserIDKey holds the authenticated user's id.
	CtxUserIDKey = "userID"
)

// Protect validates the bearer assertion from the Authorization header and
// resolves it to a live identity before any handler runs. A verified token
// whose subject no longer exists fails authentication; it never reaches a
// handler with an empty identity.
func Protect(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			Abort(c, apperr.New(apperr.Unauthenticated, "Unauthorized, no token provided"))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := jwt.Parse(token)
		if err != nil {
			Abort(c, apperr.Wrap(apperr.Unauthenticated, "Unauthorized, invalid token", err))
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperr.KindOf(err) == apperr.NotFound {
				Abort(c, apperr.New(apperr.Unauthenticated, "Unauthorized, invalid token"))
				return
			}
			Abort(c, err)
			return
		}

		current := u.WithoutPassword()
		c.Set(CtxUserKey, &current)
		c.Set(CtxUserIDKey, current.ID)
		c.Next()
	}
}

// CurrentUser returns the identity attached by Protect.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
