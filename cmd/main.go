package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/config"
	"github.com/oksasatya/identity-mongo/internal/container"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb"
	"github.com/oksasatya/identity-mongo/internal/interface/middleware"
	"github.com/oksasatya/identity-mongo/internal/registration"
	"github.com/oksasatya/identity-mongo/internal/router"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
	"github.com/oksasatya/identity-mongo/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	rep, err := cfg.UUIDRepresentation()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	kind, err := cfg.KeyKind()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// MongoDB
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout, rep)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	// Redis
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	if err := helpers.PingRedis(ctx, rdb, 3*time.Second); err != nil {
		logger.WithError(err).Warn("redis unavailable, sessions and rate limits disabled until it recovers")
	}

	// JWT
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(client)
	container.SetDatabase(db)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)

	validation.Init()

	opts := registration.Options{
		UserCollection:     cfg.UserCollection,
		RoleCollection:     cfg.RoleCollection,
		UUIDRepresentation: rep,
		KeyKind:            kind,
	}
	switch kind {
	case entity.KeyUUID:
		err = serve[uuid.UUID](cfg, logger, db, opts)
	case entity.KeyObjectID:
		err = serve[primitive.ObjectID](cfg, logger, db, opts)
	default:
		err = serve[string](cfg, logger, db, opts)
	}
	if err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("server exited properly")
}

// serve registers the identity stores for key type K and runs the admin API
// until SIGINT or SIGTERM.
func serve[K entity.Key](cfg *config.Config, logger *logrus.Logger, db *mongo.Database, opts registration.Options) error {
	stores, err := registration.AddStores[K, entity.User[K], entity.Role[K]](db, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = stores.Users.Close()
		_ = stores.Roles.Close()
	}()
	registration.Register(container.Stores(), stores)
	logger.WithFields(logrus.Fields{
		"key_kind":  stores.Kind.String(),
		"uuid_repr": opts.UUIDRepresentation.String(),
	}).Info("identity stores registered")

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules[K](reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctxShutdown)
}
