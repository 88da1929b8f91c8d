package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"agriconnect-be/internal/cart"
	"agriconnect-be/internal/chat"
	"agriconnect-be/internal/config"
	"agriconnect-be/internal/db"
	"agriconnect-be/internal/logger"
	"agriconnect-be/internal/notification"
	"agriconnect-be/internal/order"
	"agriconnect-be/internal/product"
	"agriconnect-be/internal/server"
	"agriconnect-be/internal/tracing"
	"agriconnect-be/internal/tracking"
	"agriconnect-be/internal/user"
	"agriconnect-be/internal/vendor"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// stepInterval matches the storefront's animated tracking timeline.
const stepInterval = 2 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	shutdownTracing, err := tracing.Init()
	if err != nil {
		log.Fatalf("Failed to init tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartSvc := cart.NewService(cart.NewStore(), productRepo)

	notifier := notification.NewWebhookNotifier(cfg.MailWebhookURL)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, notifier)

	vendorSvc := vendor.NewService(
		vendor.NewAIGenerator(cfg.VendorGatewayKey, cfg.VendorGatewayURL),
		vendor.NewRedisCache(redisClient),
	)

	// Local mode keeps chat on canned replies; otherwise a missing API key
	// surfaces as ErrNotConfigured on the first request.
	var model chat.Model
	if !cfg.ChatLocalMode {
		model = chat.NewGeminiClient(cfg.GeminiAPIKey)
	}
	chatSvc := chat.NewService(model, productRepo, orderRepo, userRepo)

	simulator := tracking.NewSimulator(stepInterval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go simulator.Run(ctx)

	srv := server.NewServer(userSvc, productSvc, cartSvc, orderSvc, vendorSvc, chatSvc, simulator)

	logger.L().Info("🚀 AgriConnect API running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv.Router()))
}
