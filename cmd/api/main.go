package main

import (
	"log"
	"os"

	_ "agritrace/api/swagger" // swagger docs
	"agritrace/internal/handler"
	"agritrace/internal/middleware"
	"agritrace/internal/service"
	"agritrace/internal/store"
	"agritrace/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           AgriTrace API
// @version         1.0
// @description     Data layer for the agricultural supply-chain dashboard: role-scoped field access, GeoJSON import, traceability timelines and analytics. All state is in-memory demo data and resets on restart.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	// Seeded in-memory state; nothing persists across restarts.
	st := store.NewSeeded()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	authService := service.NewAuthService()
	changeLogService := service.NewChangeLogService()
	mapService := service.NewMapService(st)
	adminService := service.NewAdminService(st, changeLogService, wsHub)
	importService := service.NewImportService(st, changeLogService, wsHub)
	traceService := service.NewTraceService(st)
	analyticsService := service.NewAnalyticsService(st, traceService, wsHub)
	producerService := service.NewProducerService(st)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	mapHandler := handler.NewMapHandler(mapService, authService)
	registryHandler := handler.NewRegistryHandler(st)
	adminHandler := handler.NewAdminHandler(adminService, authService, changeLogService)
	importHandler := handler.NewImportHandler(importService, authService)
	traceHandler := handler.NewTraceHandler(traceService, authService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	producerHandler := handler.NewProducerHandler(producerService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket change feed
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	mapHandler.RegisterRoutes(router.Group(""))
	registryHandler.RegisterRoutes(router.Group(""))
	adminHandler.RegisterRoutes(router.Group(""))
	importHandler.RegisterRoutes(router.Group(""))
	traceHandler.RegisterRoutes(router.Group(""))
	analyticsHandler.RegisterRoutes(router.Group(""))
	producerHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
