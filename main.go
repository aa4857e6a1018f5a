package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/config"
	"github.com/Bossbrown1770/AUTO-CAR/controllers"
	"github.com/Bossbrown1770/AUTO-CAR/database"
	"github.com/Bossbrown1770/AUTO-CAR/logger"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
	"github.com/Bossbrown1770/AUTO-CAR/routes"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// --- MongoDB ---
	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	// --- Repositories ---
	carRepo := repository.NewMongoCarRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	txRepo := repository.NewMongoTransactionRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)
	inquiryRepo := repository.NewMongoInquiryRepository(db)

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := txRepo.EnsureIndexes(startupCtx); err != nil {
		log.Fatal("Failed to create transaction indexes", zap.Error(err))
	}

	// --- Services ---
	gateway := services.NewStripeGateway(cfg.StripeAPIKey)
	notifier := services.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, log)
	tokens := services.NewTokenService(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, tokens, log)
	carService := services.NewCarService(carRepo, log)
	orderService := services.NewOrderService(orderRepo, carRepo, log)
	paymentService := services.NewPaymentService(gateway, txRepo, carRepo, userRepo, notifier, log)
	contactService := services.NewContactService(contactRepo, inquiryRepo, notifier, log)
	dashboardService := services.NewDashboardService(carRepo, userRepo, orderRepo, txRepo, log)

	if err := authService.EnsureAdminUser(startupCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Warn("Admin bootstrap failed", zap.Error(err))
	}

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	ctrl := &routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Car:     controllers.NewCarController(carService),
		Order:   controllers.NewOrderController(orderService),
		Payment: controllers.NewPaymentController(paymentService, log),
		Contact: controllers.NewContactController(contactService),
		Admin:   controllers.NewAdminController(dashboardService),
	}
	routes.Register(r, ctrl, tokens)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info("Car dealer API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped gracefully")
}
