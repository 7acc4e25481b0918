package main

import (
	"context"
	"log"
	"time"

	"janconnect-be/config"
	"janconnect-be/media"
	"janconnect-be/middlewares"
	"janconnect-be/repository"
	"janconnect-be/repository/mongorepo"
	"janconnect-be/repository/sqlrepo"
	"janconnect-be/routes"
	"janconnect-be/services"

	"github.com/gin-gonic/gin"
)

func openStore(cfg *config.Config) *repository.Store {
	if cfg.DBDriver == "mongo" {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		if err := mongorepo.EnsureIndexes(db); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		return mongorepo.NewStore(db)
	}

	db, err := config.ConnectSQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := sqlrepo.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return sqlrepo.NewStore(db)
}

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("Please define the JWT_SECRET environment variable")
	}

	store := openStore(cfg)
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	svc := services.New(store, rdb, cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.Auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}
	cancel()

	var uploader media.Uploader
	if cld, err := media.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder); err != nil {
		log.Printf("Image uploads disabled: %v", err)
	} else {
		uploader = cld
	}

	r := gin.Default()
	r.Use(middlewares.CORS(cfg.CORSOrigins))
	r.MaxMultipartMemory = 16 << 20

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Services: svc,
		Redis:    rdb,
		Uploader: uploader,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
