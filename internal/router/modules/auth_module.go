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

// AuthModule wires admin login and logout.
// Public: POST /api/login
// Protected: POST /api/logout
type AuthModule[K entity.Key] struct {
	Handler *handlers.AuthHandler[K]
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewAuthModule[K entity.Key](h *handlers.AuthHandler[K], jwt *helpers.JWTManager, rdb *redis.Client) *AuthModule[K] {
	return &AuthModule[K]{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *AuthModule[K]) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, application.AdminRole, m.Handler.Svc))
	auth.POST("/logout", m.Handler.Logout)
}
