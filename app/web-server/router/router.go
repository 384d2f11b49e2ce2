package router

import (
	"net/http"

	"agamOrganics/internal/web"

	"github.com/labstack/echo/v4"
)

func SetupPageRoutes(e *echo.Echo, handler *web.Handler) {
	e.GET("/", handler.Home)
	e.GET("/product/:id", handler.ProductDetail)
	e.GET("/login", handler.LoginPage)
	e.POST("/login", handler.Login)
	e.GET("/signup", handler.SignupPage)
	e.POST("/signup", handler.Signup)
	e.GET("/logout", handler.Logout)

	e.GET("/cart", handler.Cart, handler.RequireLogin)
	e.GET("/checkout", handler.Checkout, handler.RequireLogin)
	e.GET("/orders/:id", handler.OrderDetail, handler.RequireLogin)
	e.GET("/profile", handler.Profile, handler.RequireLogin)
}

func SetupAjaxRoutes(e *echo.Echo, handler *web.Handler) {
	api := e.Group("/api")
	api.GET("/products", handler.APIProducts)

	authed := api.Group("", handler.RequireLoginAPI)
	authed.GET("/cart", handler.APICart)
	authed.POST("/cart/add", handler.APIAddToCart)
	authed.PUT("/cart/update/:id", handler.APIUpdateCart)
	authed.DELETE("/cart/remove/:id", handler.APIRemoveFromCart)
	authed.POST("/checkout/razorpay-order", handler.APIRazorpayOrder)
	authed.POST("/checkout/create-order", handler.APICreateOrder)
	authed.POST("/profile/addresses", handler.APIAddAddress)
	authed.PUT("/orders/:id/cancel", handler.APICancelOrder)
}

func SetupStaticRoutes(e *echo.Echo, metrics echo.HandlerFunc) {
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFiles())))))
	e.GET("/metrics", metrics)
}
