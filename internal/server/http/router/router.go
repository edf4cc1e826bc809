package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/metrics"
	"github.com/polkiloo/atelier/internal/server/http/handlers"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
)

// Params are the router dependencies.
type Params struct {
	fx.In

	Facade      handlers.StudioFacade
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Config      *config.Config
	RateLimiter *middleware.RateLimiter
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.LimitBody(p.Config.MaxUploadBytes))
	engine.Use(middleware.DecompressRequest(p.Config.MaxUploadBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.MaxMultipartMemory = p.Config.MaxUploadBytes

	authHandler := handlers.NewAuthHandler(p.Facade, p.Config.UserTokenTTL)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	artworkHandler := handlers.NewArtworkHandler(p.Facade)
	settingsHandler := handlers.NewSettingsHandler(p.Facade)
	adminHandler := handlers.NewAdminHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	requireUser := middleware.AuthRequired(p.Facade)
	requireAdmin := []gin.HandlerFunc{requireUser, middleware.AdminOnly()}
	limited := p.RateLimiter.Handler()

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.POST("/admin/login", authHandler.AdminLogin)
	admin := api.Group("/admin", requireAdmin...)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/profile", adminHandler.Profile)
	admin.PUT("/profile", adminHandler.UpdateProfile)
	admin.POST("/upload", adminHandler.Upload)

	artworks := api.Group("/artworks")
	artworks.GET("", artworkHandler.List)
	artworks.GET("/:id", artworkHandler.Get)
	artworks.PUT("/:id/like", limited, artworkHandler.Like)
	artworks.POST("/:id/comment", limited, artworkHandler.Comment)
	artworks.POST("", append(requireAdmin, artworkHandler.Create)...)
	artworks.PUT("/:id", append(requireAdmin, artworkHandler.Update)...)
	artworks.DELETE("/:id", append(requireAdmin, artworkHandler.Delete)...)
	artworks.DELETE("/:id/comment/:commentId", append(requireAdmin, artworkHandler.DeleteComment)...)

	api.GET("/settings", settingsHandler.Get)
	api.GET("/about", settingsHandler.About)
	api.PUT("/about", append(requireAdmin, settingsHandler.UpdateAbout)...)
	settings := api.Group("/settings", requireAdmin...)
	settings.PUT("", settingsHandler.Update)
	settings.POST("/background", settingsHandler.AddBackground)
	settings.POST("/funfact", settingsHandler.AddFunFact)
	settings.DELETE("/funfact/:factId", settingsHandler.DeleteFunFact)

	api.GET("/uploads/signature", append(requireAdmin, artworkHandler.Signature)...)

	orders := api.Group("/orders", requireUser)
	orders.POST("", orderHandler.Create)
	orders.GET("/my", orderHandler.Mine)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/cancel", orderHandler.Cancel)
	orders.GET("", middleware.AdminOnly(), orderHandler.All)
	orders.PUT("/:id", middleware.AdminOnly(), orderHandler.SetStatus)

	return engine
}
