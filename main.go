package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allservices/config"
	"allservices/database"
	bookingRepoPkg "allservices/database/repository/booking"
	reviewRepoPkg "allservices/database/repository/review"
	serviceRepoPkg "allservices/database/repository/service"
	userRepoPkg "allservices/database/repository/user"
	"allservices/handlers"
	"allservices/middleware"
	"allservices/routes"
	"allservices/services/booking"
	"allservices/services/catalog"
	"allservices/services/review"
	"allservices/services/storage"
	"allservices/services/user"
	"allservices/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		ServiceRepo: serviceRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		UserRepo:    userRepo,
		Locker:      utils.NewRedisKeyedLocker(utils.GetLockClient(), 10*time.Second),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(userService),
		Services: handlers.NewServiceHandler(catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Reviews:  handlers.NewReviewHandler(reviewService),
		Storage:  handlers.NewStorageHandler(storageService),
		UserRepo: userRepo,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
