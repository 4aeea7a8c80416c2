package router

import (
	"github.com/wiratama/expense-tracker-api/internal/application"
	"github.com/wiratama/expense-tracker-api/internal/container"
	pginfra "github.com/wiratama/expense-tracker-api/internal/infrastructure/postgres"
	handlers "github.com/wiratama/expense-tracker-api/internal/interface/http"
	"github.com/wiratama/expense-tracker-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	txRepo := pginfra.NewTransactionRepository(pool)

	userSvc := application.NewUserService(userRepo, jwt, logger)
	txSvc := application.NewTransactionService(txRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userRepo, jwt))
	r.Add(modules.NewTransactionModule(handlers.NewTransactionHandler(txSvc, logger), userRepo, jwt))
}
