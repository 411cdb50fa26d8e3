package main

import (
	"log"
	"net/http"

	_ "pandimaja/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"pandimaja/internal/auth"
	"pandimaja/internal/cache"
	"pandimaja/internal/config"
	"pandimaja/internal/db"
	"pandimaja/internal/handler"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
	"pandimaja/internal/router"
	"pandimaja/internal/service"
)

// @title Pandimaja API
// @version 1.0
// @description Pawnshop management API: employees, clients, products and pawn contracts behind JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Status{},
		&model.Tootaja{},
		&model.Klient{},
		&model.Toode{},
		&model.Leping{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	tootajaRepo := repository.NewTootajaRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	klientRepo := repository.NewKlientRepository(gormDB)
	toodeRepo := repository.NewToodeRepository(gormDB)
	lepingRepo := repository.NewLepingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(tootajaRepo, roleRepo, jwtService)
	klientService := service.NewKlientService(klientRepo, cacheClient)
	toodeService := service.NewToodeService(toodeRepo, cacheClient)
	lepingService := service.NewLepingService(lepingRepo, cacheClient)
	tootajaService := service.NewTootajaService(tootajaRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	klientHandler := handler.NewKlientHandler(klientService)
	toodeHandler := handler.NewToodeHandler(toodeService, cfg.UploadDir)
	lepingHandler := handler.NewLepingHandler(lepingService)
	tootajaHandler := handler.NewTootajaHandler(tootajaService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		klientHandler,
		toodeHandler,
		lepingHandler,
		tootajaHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
