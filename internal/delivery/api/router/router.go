// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"autobid/internal/delivery/api/middleware"
	"autobid/internal/delivery/api/router/handler"
	"autobid/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	LocationHandler    *handler.LocationHandler
	ListingHandler     *handler.ListingHandler
	UserHandler        *handler.UserHandler
	KycHandler         *handler.KycHandler
	TransactionHandler *handler.TransactionHandler
	VehicleHandler     *handler.VehicleHandler
	DashboardHandler   *handler.DashboardHandler
	StreamHandler      *handler.StreamHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	locationHandler    *handler.LocationHandler
	listingHandler     *handler.ListingHandler
	userHandler        *handler.UserHandler
	kycHandler         *handler.KycHandler
	transactionHandler *handler.TransactionHandler
	vehicleHandler     *handler.VehicleHandler
	dashboardHandler   *handler.DashboardHandler
	streamHandler      *handler.StreamHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		locationHandler:    params.LocationHandler,
		listingHandler:     params.ListingHandler,
		userHandler:        params.UserHandler,
		kycHandler:         params.KycHandler,
		transactionHandler: params.TransactionHandler,
		vehicleHandler:     params.VehicleHandler,
		dashboardHandler:   params.DashboardHandler,
		streamHandler:      params.StreamHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Every admin route requires an authenticated admin
	admin := e.Group("/api/v1/admin")
	admin.Use(r.authMiddleware.Authenticate)

	locations := admin.Group("/locations")
	{
		locations.GET("/counts", r.locationHandler.CountLocations)
		locations.POST("/import", r.locationHandler.ImportLocations)
		locations.GET("/:level", r.locationHandler.ListLocations)
		locations.POST("", r.locationHandler.CreateLocation)
		locations.PUT("/:level/:id", r.locationHandler.UpdateLocation)
		locations.DELETE("/:level/:id", r.locationHandler.DeleteLocation)
	}

	listings := admin.Group("/listings")
	{
		listings.GET("", r.listingHandler.ListListings)
		listings.GET("/statuses", r.listingHandler.ListStatuses)
		listings.POST("/delete", r.listingHandler.DeleteListings)
		listings.GET("/:id", r.listingHandler.GetListing)
		listings.GET("/:id/bids", r.listingHandler.ListBids)
		listings.POST("/:id/moderate", r.listingHandler.ModerateListing)
		listings.PUT("/:id/active", r.listingHandler.ToggleListingActive)
	}

	users := admin.Group("/users")
	{
		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.GET("/roles", r.userHandler.ListRoles)
		users.POST("/deactivate", r.userHandler.DeactivateUsers)
		users.POST("/delete", r.userHandler.DeleteUsers, r.authMiddleware.RequireRole(entity.AdminRoleSuperAdmin))
		users.GET("/:id", r.userHandler.GetUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.PUT("/:id/:flag", r.userHandler.ToggleUserFlag)
	}
	admin.PUT("/me/password", r.userHandler.ChangePassword)

	kyc := admin.Group("/kyc")
	{
		kyc.GET("", r.kycHandler.ListKyc)
		kyc.GET("/:id", r.kycHandler.GetKyc)
		kyc.POST("/:id/approve", r.kycHandler.ApproveKyc)
		kyc.POST("/:id/reject", r.kycHandler.RejectKyc)
	}

	transactions := admin.Group("/transactions")
	{
		transactions.GET("", r.transactionHandler.ListTransactions)
		transactions.GET("/stats", r.transactionHandler.GetTransactionStats)
		transactions.GET("/:id", r.transactionHandler.GetTransaction)
		transactions.POST("/:id/approve", r.transactionHandler.ApproveTransaction)
		transactions.POST("/:id/reject", r.transactionHandler.RejectTransaction)
	}

	vehicles := admin.Group("/vehicles")
	{
		vehicles.GET("/brands", r.vehicleHandler.ListBrands)
		vehicles.POST("/brands", r.vehicleHandler.CreateBrand)
		vehicles.PUT("/brands/:id", r.vehicleHandler.UpdateBrand)
		vehicles.DELETE("/brands/:id", r.vehicleHandler.DeleteBrand)
		vehicles.POST("/brands/:id/logo", r.vehicleHandler.UploadBrandLogo)

		vehicles.GET("/models", r.vehicleHandler.ListModels)
		vehicles.POST("/models", r.vehicleHandler.CreateModel)
		vehicles.PUT("/models/:id", r.vehicleHandler.UpdateModel)
		vehicles.DELETE("/models/:id", r.vehicleHandler.DeleteModel)

		vehicles.GET("/variants", r.vehicleHandler.ListVariants)
		vehicles.POST("/variants", r.vehicleHandler.CreateVariant)
		vehicles.PUT("/variants/:id", r.vehicleHandler.UpdateVariant)
		vehicles.DELETE("/variants/:id", r.vehicleHandler.DeleteVariant)
	}

	admin.GET("/dashboard", r.dashboardHandler.GetStats)

	// Live feeds
	admin.GET("/auctions/:id/bids/stream", r.streamHandler.StreamAuctionBids)
	admin.GET("/events/stream", r.streamHandler.StreamEvents)
}
