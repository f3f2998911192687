// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/container"
	"github.com/pagemint/pagemint-go/internal/presentation/http/handlers"
	"github.com/pagemint/pagemint-go/internal/presentation/http/middleware"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Serve uploaded product media.
	r.Static("/media", config.MediaDirectory)

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	pageHandlers := handlers.NewLandingPageHandlers(container.LandingPageService, container.Logger)
	productHandlers := handlers.NewProductHandlers(container.ProductService, container.Logger)
	fragmentHandlers := handlers.NewFragmentHandlers(container.FragmentService, container.Logger)
	orderHandlers := handlers.NewOrderHandlers(container.OrderService, container.Logger)
	builderHandlers := handlers.NewBuilderHandlers(container.BuilderService, container.FragmentService, container.Logger)
	previewHandlers := handlers.NewPreviewHandlers(container.PreviewBroadcaster, container.Logger)

	requireAuth := middleware.AuthMiddleware(container.AuthService)

	api := r.Group("/api/v1")
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandlers.PostRegister)
			auth.POST("/login", authHandlers.PostLogin)
		}

		// Public storefront surface
		api.GET("/fragments/pages/:id", fragmentHandlers.GetPageHTML)
		api.GET("/fragments/pages/:id/compiled", fragmentHandlers.GetCompiledPage)
		api.POST("/orders", orderHandlers.PostOrder)
		api.GET("/preview/:pageId/ws", previewHandlers.GetPreviewSocket)

		// Landing pages
		pages := api.Group("/pages", requireAuth)
		{
			pages.POST("", pageHandlers.PostPage)
			pages.GET("", pageHandlers.GetPages)
			pages.GET("/:id", pageHandlers.GetPage)
			pages.PUT("/:id", pageHandlers.PutPage)
			pages.DELETE("/:id", pageHandlers.DeletePage)
		}

		// Products
		products := api.Group("/products", requireAuth)
		{
			products.POST("", productHandlers.PostProduct)
			products.GET("", productHandlers.GetProducts)
			products.GET("/:id", productHandlers.GetProduct)
			products.PUT("/:id", productHandlers.PutProduct)
			products.DELETE("/:id", productHandlers.DeleteProduct)
			products.POST("/:id/images", productHandlers.PostProductImage)
		}

		// Orders (seller side)
		orders := api.Group("/orders", requireAuth)
		{
			orders.GET("", orderHandlers.GetOrders)
			orders.PUT("/:id/status", orderHandlers.PutOrderStatus)
		}

		// Builder sessions
		builder := api.Group("/builder/sessions", requireAuth)
		{
			builder.POST("", builderHandlers.PostSession)
			builder.DELETE("/:id", builderHandlers.DeleteSession)
			builder.POST("/:id/gestures", builderHandlers.PostGesture)
			builder.POST("/:id/save", builderHandlers.PostSave)
			builder.POST("/:id/preview", builderHandlers.PostPreview)
		}
	}

	return r
}
