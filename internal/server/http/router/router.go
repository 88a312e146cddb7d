package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/handlers"
	"github.com/stitchmate/stitchmate/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	workflowHandler := handlers.NewWorkflowHandler(facade)
	fabricHandler := handlers.NewFabricHandler(facade)
	designHandler := handlers.NewDesignHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	tailorHandler := handlers.NewTailorHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	assistantHandler := handlers.NewAssistantHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.POST("/reset-password", authHandler.ResetPassword)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/me", authHandler.Me)

	// The customer workflow is reserved for the user role; tailors and
	// admins have their own groups.
	customer := user.Group("")
	customer.Use(middleware.RoleRequired(facade, model.RoleUser))

	customer.GET("/workflow", workflowHandler.State)
	customer.PUT("/workflow/step", workflowHandler.SetStep)
	customer.POST("/workflow/reset", workflowHandler.Reset)
	customer.POST("/workflow/accessories", workflowHandler.AddAccessory)
	customer.DELETE("/workflow/accessories/:id", workflowHandler.RemoveAccessory)
	customer.POST("/workflow/tryon", workflowHandler.TryOn)
	customer.POST("/assistant", assistantHandler.Ask)

	customer.POST("/fabric", fabricHandler.Upload)
	customer.POST("/fabric/analyze", fabricHandler.Analyze)
	customer.POST("/designs/generate", designHandler.Generate)
	customer.POST("/designs/select", designHandler.Select)

	customer.GET("/accessories", catalogHandler.Accessories)
	customer.GET("/tailors", catalogHandler.Tailors)

	customer.POST("/orders", orderHandler.Post)
	customer.GET("/orders", orderHandler.List)
	customer.GET("/orders/:id", orderHandler.Get)
	customer.GET("/orders/:id/bids", orderHandler.Bids)
	customer.POST("/orders/:id/select-bid", orderHandler.SelectBid)
	customer.POST("/orders/:id/booking", orderHandler.Booking)
	customer.POST("/orders/:id/payment", orderHandler.Pay)
	customer.POST("/orders/:id/review", orderHandler.Review)

	customer.POST("/tailor-application", tailorHandler.Apply)

	tailor := api.Group("/tailor")
	tailor.Use(middleware.AuthRequired(facade))
	tailor.Use(middleware.RoleRequired(facade, model.RoleTailor))
	tailor.GET("/orders", tailorHandler.OpenOrders)
	tailor.POST("/orders/:id/bids", tailorHandler.PlaceBid)
	tailor.POST("/orders/:id/delivered", tailorHandler.ConfirmDelivery)
	tailor.GET("/bids", tailorHandler.MyBids)
	tailor.GET("/booked", tailorHandler.BookedOrders)
	tailor.GET("/earnings", tailorHandler.Earnings)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.RoleRequired(facade, model.RoleAdmin))
	admin.GET("/applications", adminHandler.Applications)
	admin.POST("/applications/:id/approve", adminHandler.Approve)
	admin.POST("/applications/:id/reject", adminHandler.Reject)

	return engine
}
