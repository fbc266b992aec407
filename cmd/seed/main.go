package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/config"
	"github.com/oksasatya/identity-mongo/internal/application"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb"
	"github.com/oksasatya/identity-mongo/internal/registration"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	rep, err := cfg.UUIDRepresentation()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	kind, err := cfg.KeyKind()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout, rep)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDatabase)

	opts := registration.Options{
		UserCollection:     cfg.UserCollection,
		RoleCollection:     cfg.RoleCollection,
		UUIDRepresentation: rep,
		KeyKind:            kind,
	}
	switch kind {
	case entity.KeyUUID:
		err = seed[uuid.UUID](ctx, cfg, db, opts)
	case entity.KeyObjectID:
		err = seed[primitive.ObjectID](ctx, cfg, db, opts)
	default:
		err = seed[string](ctx, cfg, db, opts)
	}
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

// seed ensures the ADMIN role and an admin user holding it.
func seed[K entity.Key](ctx context.Context, cfg *config.Config, db *mongo.Database, opts registration.Options) error {
	stores, err := registration.AddStores[K, entity.User[K], entity.Role[K]](db, opts)
	if err != nil {
		return err
	}
	users, roles := stores.Users, stores.Roles

	role, err := roles.FindByName(ctx, application.AdminRole)
	if err != nil {
		return err
	}
	if role == nil {
		role = entity.NewRole[K](strings.ToLower(application.AdminRole))
		role.NormalizedName = application.AdminRole
		res, err := roles.Create(ctx, role)
		if err != nil {
			return err
		}
		if !res.Succeeded {
			return fmt.Errorf("create admin role: %s", res)
		}
	}
	fmt.Printf("role ensured: %s id=%s\n", role.NormalizedName, roles.Codec().Format(role.ID))

	user, err := users.FindByName(ctx, application.Normalize(cfg.SeedAdminUserName))
	if err != nil {
		return err
	}
	if user == nil {
		hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user = entity.NewUser[K](cfg.SeedAdminUserName)
		user.NormalizedUserName = application.Normalize(cfg.SeedAdminUserName)
		user.Email = cfg.SeedAdminEmail
		user.NormalizedEmail = application.Normalize(cfg.SeedAdminEmail)
		user.EmailConfirmed = true
		user.PasswordHash = hash
		res, err := users.Create(ctx, user)
		if err != nil {
			return err
		}
		if !res.Succeeded {
			return fmt.Errorf("create admin user: %s", res)
		}
		fmt.Printf("seeded user: name=%s email=%s password=%s\n", user.UserName, user.Email, cfg.SeedAdminPassword)
	}

	inRole, err := users.IsInRole(ctx, user, application.AdminRole)
	if err != nil {
		return err
	}
	if !inRole {
		if err := users.AddToRole(ctx, user, application.AdminRole); err != nil {
			return err
		}
		fmt.Println("assigned admin role to seeded user")
	}
	return nil
}
