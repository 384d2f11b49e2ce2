package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agamOrganics/app/echo-server/metrics"
	"agamOrganics/app/echo-server/router"
	"agamOrganics/business/banner"
	"agamOrganics/business/cart"
	"agamOrganics/business/category"
	"agamOrganics/business/orders"
	"agamOrganics/business/payments"
	"agamOrganics/business/product"
	"agamOrganics/business/review"
	userService "agamOrganics/business/user"
	"agamOrganics/internal/middleware"
	"agamOrganics/internal/repository/notification"
	psqlRepo "agamOrganics/internal/repository/postgres"
	"agamOrganics/internal/repository/razorpay"
	redisRepo "agamOrganics/internal/repository/redis"
	"agamOrganics/internal/rest"
	"agamOrganics/pkg/config"
	"agamOrganics/pkg/database"
	redisClient "agamOrganics/pkg/database/redis"
	"agamOrganics/pkg/logger"
	checkoutMetrics "agamOrganics/pkg/metrics"
	"agamOrganics/pkg/retry"
	"agamOrganics/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "env", cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", "error", err)
	}

	logger.Info("Database connected successfully")

	tokens, err := utils.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
	if err != nil {
		logger.Fatal("Failed to init token manager", "error", err)
	}

	// Token registry is optional; the interfaces stay nil when it is off.
	var tokenStore userService.TokenStore
	var tokenValidator middleware.TokenValidator
	if cfg.Redis.Enabled {
		rdb, err := redisClient.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisClient.CloseRedisClient(rdb)

		tokenRepo := redisRepo.NewTokenRepository(rdb)
		tokenStore = tokenRepo
		tokenValidator = tokenRepo
		logger.Info("Redis token registry enabled")
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	razorpayRepo := razorpay.NewRazorpayRepository(
		razorpay.RazorpayConfig{
			Key:    cfg.Razorpay.Key,
			Secret: cfg.Razorpay.Secret,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	addressRepo := psqlRepo.NewAddressRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	bannerRepo := psqlRepo.NewBannerRepository(db)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, tokens, tokenStore)
	addressSvc := userService.NewAddressService(addressRepo, validate)
	productSvc := product.NewProductService(productsRepo)
	categorySvc := category.NewCategoryService(categoryRepo)
	cartSvc := cart.NewCartService(cartRepo, productsRepo)
	paymentsSvc := payments.NewPaymentsService(razorpayRepo)
	insertPolicy := retry.Policy{
		MaxRetries:     cfg.Checkout.OrderInsertMaxRetries,
		BaseDelay:      cfg.Checkout.RetryBaseDelay,
		AttemptTimeout: cfg.Checkout.OrderInsertTimeout,
	}
	if insertPolicy.Budget() > rest.CheckoutTimeout {
		logger.Warn("Order insert retries exceed the checkout timeout and will be cut short",
			"retry_budget", insertPolicy.Budget(), "checkout_timeout", rest.CheckoutTimeout)
	}
	ordersSvc := orders.NewOrdersService(orders.Dependencies{
		Orders:    ordersRepo,
		Cart:      cartRepo,
		Addresses: addressRepo,
		Products:  productsRepo,
		Users:     userRepo,
		Payments:  paymentsSvc,
		Notifier:  mailjetEmail,
	}, insertPolicy)
	reviewSvc := review.NewReviewService(reviewRepo, productsRepo, validate)
	bannerSvc := banner.NewBannerService(bannerRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	profileHandler := rest.NewProfileHandler(userSvc, addressSvc)
	productHandler := rest.NewProductHandler(productSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	cartHandler := rest.NewCartHandler(cartSvc)
	ordersHandler := rest.NewOrdersHandler(ordersSvc)
	checkoutHandler := rest.NewCheckoutHandler(ordersSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	bannerHandler := rest.NewBannerHandler(bannerSvc)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version, sqlDB)

	// Init metrics
	metrics.Init()
	checkoutMetrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	guards := router.Guards{
		AuthRequired: middleware.AuthMiddlewareWithRedis(tokens, tokenValidator, utils.TokenTypeAccess),
		AnyToken:     middleware.AuthMiddlewareWithRedis(tokens, tokenValidator, utils.TokenTypeAccess, utils.TokenTypeRefresh),
	}

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, userHandler, guards)
	router.SetupProductRoutes(api, productHandler, categoryHandler)
	router.SetupCartRoutes(api, cartHandler, guards)
	router.SetOrdersRoutes(api, ordersHandler, guards)
	router.SetCheckoutRoutes(api, checkoutHandler, guards)
	router.SetupProfileRoutes(api, profileHandler, guards)
	router.SetupReviewRoutes(api, reviewHandler, guards)
	router.SetupBannerRoutes(api, bannerHandler)
	router.SetupSystemRoutes(e, healthHandler, echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
