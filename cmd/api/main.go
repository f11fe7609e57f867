package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/miyaru/miyaru-backend/docs"
	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	httphandlers "github.com/miyaru/miyaru-backend/internal/handlers/http"
	"github.com/miyaru/miyaru-backend/internal/handlers/middleware"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/auth"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/cache"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/config"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/logging"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/persistence/postgres"
	"github.com/miyaru/miyaru-backend/internal/services"
)

//	@title			Miyaru Trust Directory API
//	@version		1.0
//	@description	Diretório comunitário de perfis verificados: API administrativa, login via Google e superfície pública de leitura.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting miyaru backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Cache de leitura (opcional; sem Redis vira no-op)
	readCache := cache.NewRedis(&cfg.Redis, logger)
	cacheTTL := time.Duration(cfg.Redis.TTL) * time.Second

	// Tokens e verificação Google
	expiry, err := time.ParseDuration(cfg.JWT.Expiry)
	if err != nil {
		logger.Warn("invalid JWT_EXPIRY, using default", "value", cfg.JWT.Expiry)
		expiry = 0
	}
	tokens := auth.NewTokenService(cfg.JWT.Secret, expiry)
	googleVerifier := auth.NewGoogleVerifier(cfg.OAuth.GoogleClientID)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	newsRepo := postgres.NewNewsRepository(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, googleVerifier, tokens, logger)
	profileService := services.NewProfileService(userRepo, newsRepo, readCache, cacheTTL, logger)
	statsService := services.NewStatsService(userRepo, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService)
	profileHandler := httphandlers.NewProfileHandler(profileService)
	dashboardHandler := httphandlers.NewDashboardHandler(statsService, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// API administrativa legada
		users := api.Group("/users")
		{
			users.GET("", authMiddleware.RequireRole(entities.RoleUser), userHandler.ListUsers)
			users.POST("", authMiddleware.RequireRole(entities.RoleAdmin), userHandler.CreateUser)
			users.PUT("", authMiddleware.RequireRole(entities.RoleAdmin), userHandler.UpdateUser)
			users.DELETE("", authMiddleware.RequireRole(entities.RoleSuperAdmin), userHandler.DeleteUser)
			users.GET("/search", authMiddleware.RequireRole(entities.RoleUser), userHandler.SearchUsers)
			users.POST("/filter", authMiddleware.RequireRole(entities.RoleUser), userHandler.FilterUsers)
		}

		// Login
		api.POST("/auth/google", authHandler.LoginWithGoogle)

		// Superfície pública
		api.GET("/profiles/:slug", profileHandler.GetProfile)
		api.GET("/news", profileHandler.ListNews)

		// Dashboard do back-office
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", authMiddleware.RequireRole(entities.RoleAdmin), dashboardHandler.GetStats)
			dashboard.GET("/ws", authMiddleware.RequireRoleToken(entities.RoleAdmin), dashboardHandler.StreamStats)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
