package router

import (
	"agamOrganics/internal/rest"

	"github.com/labstack/echo/v4"
)

// Guards bundles the auth middlewares routes pick from.
type Guards struct {
	// AuthRequired accepts access tokens only.
	AuthRequired echo.MiddlewareFunc
	// AnyToken accepts access or refresh tokens, for the refresh route.
	AnyToken echo.MiddlewareFunc
}

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, g Guards) {
	auth := api.Group("/auth")

	auth.POST("/signup", handler.Signup)
	auth.POST("/login", handler.Login)
	auth.POST("/refresh", handler.Refresh, g.AnyToken)
	auth.POST("/logout", handler.Logout, g.AuthRequired)
	auth.GET("/me", handler.Me, g.AuthRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, categoryHandler *rest.CategoryHandler) {
	products := api.Group("/products")

	products.GET("", handler.ListProducts)
	products.GET("/categories", categoryHandler.GetAllCategories)
	products.GET("/similar/:id", handler.SimilarProducts)
	products.GET("/:id", handler.GetProduct)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, g Guards) {
	cart := api.Group("/cart", g.AuthRequired)

	cart.GET("", handler.GetCart)
	cart.POST("/add", handler.AddToCart)
	cart.PUT("/update/:id", handler.UpdateQuantity)
	cart.DELETE("/remove/:id", handler.RemoveItem)
	cart.DELETE("/clear", handler.ClearCart)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler, g Guards) {
	orders := api.Group("/orders", g.AuthRequired)

	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetAllOrders)
	orders.GET("/:id", ordersHandler.GetOrderByID)
	orders.PUT("/:id/cancel", ordersHandler.CancelOrder)
}

func SetCheckoutRoutes(api *echo.Group, checkoutHandler *rest.CheckoutHandler, g Guards) {
	checkout := api.Group("/checkout", g.AuthRequired)

	checkout.POST("/razorpay-order", checkoutHandler.RazorpayOrder)
	checkout.POST("/create-order", checkoutHandler.CreateOrder)
}

func SetupProfileRoutes(api *echo.Group, handler *rest.ProfileHandler, g Guards) {
	profile := api.Group("/profile", g.AuthRequired)

	profile.GET("", handler.GetProfile)
	profile.PUT("", handler.UpdateProfile)
	profile.GET("/addresses", handler.ListAddresses)
	profile.POST("/addresses", handler.CreateAddress)
	profile.PUT("/addresses/:id", handler.UpdateAddress)
	profile.DELETE("/addresses/:id", handler.DeleteAddress)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, g Guards) {
	reviews := api.Group("/reviews")

	reviews.GET("/:product_id", handler.ListReviews)
	reviews.POST("", handler.CreateReview, g.AuthRequired)
	reviews.PUT("/:id/helpful", handler.MarkHelpful, g.AuthRequired)
	reviews.DELETE("/:id", handler.DeleteReview, g.AuthRequired)
}

func SetupBannerRoutes(api *echo.Group, handler *rest.BannerHandler) {
	api.GET("/banners", handler.ListBanners)
}

func SetupSystemRoutes(e *echo.Echo, handler *rest.HealthHandler, metrics echo.HandlerFunc) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/metrics", metrics)
}
