package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/wiratama/expense-tracker-api/internal/domain/repository"
	handlers "github.com/wiratama/expense-tracker-api/internal/interface/http"
	"github.com/wiratama/expense-tracker-api/internal/interface/middleware"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

// TransactionModule wires transaction CRUD behind the authentication gate.
// Every route requires a bearer assertion; ownership scoping happens in
// the service and repository layers.
type TransactionModule struct {
	Handler *handlers.TransactionHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewTransactionModule(h *handlers.TransactionHandler, users repo.UserRepository, jwt *helpers.JWTManager) *TransactionModule {
	return &TransactionModule{Handler: h, Users: users, JWT: jwt}
}

func (m *TransactionModule) Register(rg *gin.RouterGroup) {
	tx := rg.Group("/transactions")
	tx.Use(middleware.Protect(m.Users, m.JWT))
	{
		tx.GET("", m.Handler.List)
		tx.POST("", m.Handler.Create)
		tx.PUT("/:id", m.Handler.Update)
		tx.DELETE("/:id", m.Handler.Delete)
	}
}
