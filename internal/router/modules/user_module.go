package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	repo "github.com/wiratama/expense-tracker-api/internal/domain/repository"
	handlers "github.com/wiratama/expense-tracker-api/internal/interface/http"
	"github.com/wiratama/expense-tracker-api/internal/interface/middleware"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and the auth gates into routes.
// Public: POST /users/register, POST /users/login
// Protected: GET /users/profile, PUT /users/profile (user or admin role)
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, users repo.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Users: users, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("/register", m.Handler.Register)
	users.POST("/login", m.Handler.Login)

	protected := users.Group("/")
	protected.Use(middleware.Protect(m.Users, m.JWT))
	{
		protected.GET("/profile", m.Handler.GetProfile)
		protected.PUT("/profile", middleware.RestrictTo(entity.RoleUser, entity.RoleAdmin), m.Handler.UpdateProfile)
	}
}
