package router

import (
	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/internal/container"
	pginfra "github.com/soraho/account-api/internal/infrastructure/postgres"
	"github.com/soraho/account-api/internal/router/modules"
)

// InitModules wires the feature modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	repo := pginfra.NewAccountRepository(container.GetPGPool(), container.GetLogger())

	userSvc := application.NewUserService(repo, repo, container.GetHasher(), container.GetLogger())
	authSvc := application.NewAuthService(container.GetHasher(), container.GetTokenIssuer(), repo, repo, container.GetLogger())

	r.Add(modules.NewUserModule(userSvc))
	r.Add(modules.NewAuthModule(authSvc))
}
