package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/identity-mongo/internal/application"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	handlers "github.com/oksasatya/identity-mongo/internal/interface/http"
	"github.com/oksasatya/identity-mongo/internal/interface/middleware"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
)

// IdentityModule registers the role and user administration routes. Every
// route requires an admin access token.
type IdentityModule[K entity.Key] struct {
	Handler *handlers.IdentityHandler[K]
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewIdentityModule[K entity.Key](h *handlers.IdentityHandler[K], jwt *helpers.JWTManager, rdb *redis.Client) *IdentityModule[K] {
	return &IdentityModule[K]{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *IdentityModule[K]) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(
		middleware.Auth(m.JWT, application.AdminRole, m.Handler.Svc),
		middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByUserID(), nil),
	)

	roles := auth.Group("/roles")
	{
		roles.POST("", m.Handler.CreateRole)
		roles.GET("/:id", m.Handler.GetRole)
		roles.PUT("/:id", m.Handler.RenameRole)
		roles.DELETE("/:id", m.Handler.DeleteRole)
		roles.POST("/:id/claims", m.Handler.AddRoleClaim)
		roles.DELETE("/:id/claims", m.Handler.RemoveRoleClaim)
		roles.GET("/:id/users", m.Handler.RoleUsers)
	}

	users := auth.Group("/users")
	{
		users.POST("", m.Handler.CreateUser)
		users.GET("", m.Handler.UsersForClaim)
		users.GET("/:id", m.Handler.GetUser)
		users.DELETE("/:id", m.Handler.DeleteUser)
		users.POST("/:id/roles", m.Handler.AddToRole)
		users.DELETE("/:id/roles/:role", m.Handler.RemoveFromRole)
		users.POST("/:id/claims", m.Handler.AddUserClaim)
		users.DELETE("/:id/claims", m.Handler.RemoveUserClaim)
		users.POST("/:id/logins", m.Handler.AddLogin)
		users.DELETE("/:id/logins/:provider/:key", m.Handler.RemoveLogin)
		users.PUT("/:id/tokens", m.Handler.SetToken)
		users.DELETE("/:id/tokens/:provider/:name", m.Handler.RemoveToken)
		users.POST("/:id/recovery-codes", m.Handler.RegenerateRecoveryCodes)
		users.GET("/:id/recovery-codes", m.Handler.RecoveryCodesLeft)
	}

	auth.GET("/logins/:provider/:key", m.Handler.FindByLogin)
}
