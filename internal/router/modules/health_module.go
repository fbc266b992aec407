package modules

import (
	"context"
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/interface/middleware"
	"github.com/oksasatya/identity-mongo/pkg/response"
)

var keyKindVar = expvar.NewString("identity_key_kind")

// HealthModule exposes liveness of the document store and expvar metrics.
type HealthModule struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

func NewHealthModule(client *mongo.Client, rdb *redis.Client, kind entity.KeyKind) *HealthModule {
	keyKindVar.Set(kind.String())
	return &HealthModule{Mongo: client, Redis: rdb}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/health", rl, m.health)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}

func (m *HealthModule) health(c *gin.Context) {
	if m.Mongo == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "document store not configured", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := m.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "document store unreachable", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"mongo": "ok", "key_kind": keyKindVar.Value()}, "healthy", nil)
}
