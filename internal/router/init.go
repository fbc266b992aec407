package router

import (
	"github.com/oksasatya/identity-mongo/internal/application"
	"github.com/oksasatya/identity-mongo/internal/container"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
	handlers "github.com/oksasatya/identity-mongo/internal/interface/http"
	"github.com/oksasatya/identity-mongo/internal/router/modules"
)

type IdentityModuleDeps[K entity.Key] struct {
	Service  *application.Service[K]
	Identity *handlers.IdentityHandler[K]
	Auth     *handlers.AuthHandler[K]
}

// buildIdentityDeps resolves the stores published by registration and builds
// the service and handlers on top of them.
func buildIdentityDeps[K entity.Key]() IdentityModuleDeps[K] {
	users := container.MustResolve[repository.UserStore[K, *entity.User[K]]](container.Stores())
	roles := container.MustResolve[repository.RoleStore[K, *entity.Role[K]]](container.Stores())

	service := application.NewService[K](users, roles, container.GetJWT(), container.GetRedis(), container.GetLogger())

	cfg := container.GetConfig()
	return IdentityModuleDeps[K]{
		Service:  service,
		Identity: handlers.NewIdentityHandler(service, container.GetLogger()),
		Auth:     handlers.NewAuthHandler(service, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup, after the stores are registered
func InitModules[K entity.Key](r *Registry) {
	deps := buildIdentityDeps[K]()
	r.Add(modules.NewHealthModule(container.GetMongo(), container.GetRedis(), entity.KindOf[K]()))
	r.Add(modules.NewAuthModule(deps.Auth, container.GetJWT(), container.GetRedis()))
	r.Add(modules.NewIdentityModule(deps.Identity, container.GetJWT(), container.GetRedis()))
}
