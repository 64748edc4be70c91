package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"moteka/internal/config"
	"moteka/internal/delivery/http/middleware"
	"moteka/internal/delivery/http/route"
	repo "moteka/internal/repository/postgresql"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	db, err := repo.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := repo.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := repo.SeedAdmin(db, cfg.SeedAdminPass); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	app := gin.New()
	app.Use(gin.Recovery())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	route.SetupRoute(app, db, cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", zap.String("addr", addr))
	if err := app.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
