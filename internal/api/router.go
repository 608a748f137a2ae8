package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campus-compass/campus-api/docs"
	"github.com/campus-compass/campus-api/internal/api/handler"
	"github.com/campus-compass/campus-api/internal/api/middleware"
	"github.com/campus-compass/campus-api/internal/core/service"
	"github.com/campus-compass/campus-api/internal/core/token"
	mongodb "github.com/campus-compass/campus-api/internal/infrastructure/db/mongo"
)

// NewRouter builds a single composed Echo instance with every route module
// (auth, users, buildings, drawings, health) registered exactly once.
// Repositories are constructed here, once, and handed to the services by
// reference.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("campus"))

	// --- Dependencies ---
	credentialRepo := mongodb.NewCredentialRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	buildingRepo := mongodb.NewBuildingRepository(db)
	drawingRepo := mongodb.NewDrawingRepository(db)

	authService := service.NewAuthService(credentialRepo, issuer)
	userService := service.NewUserService(userRepo, log)
	buildingService := service.NewBuildingService(buildingRepo, log)
	drawingService := service.NewDrawingService(drawingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	buildingHandler := handler.NewBuildingHandler(buildingService)
	drawingHandler := handler.NewDrawingHandler(drawingService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(issuer, log)

	// --- Root ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	})

	// --- Auth ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Users ---
	// Only the listing is gated; the per-user routes are part of the public
	// contract.
	e.GET("/users", userHandler.List, requireAuth)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users", userHandler.Create)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Buildings ---
	buildings := e.Group("/api/buildings")
	buildings.GET("", buildingHandler.List)
	buildings.GET("/filter", buildingHandler.Filter)
	buildings.GET("/:id", buildingHandler.Get)
	buildings.POST("", buildingHandler.Create)
	buildings.PUT("/:id", buildingHandler.Update)
	buildings.DELETE("/:id", buildingHandler.Delete)

	// --- Drawings ---
	e.POST("/drawings", drawingHandler.Create)
	e.GET("/drawings", drawingHandler.List)
	e.PUT("/drawings", drawingHandler.Save)

	// --- Probes, metrics, docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
