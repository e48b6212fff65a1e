package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/aws"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/handlers"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/line"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/logger"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health + metrics
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	_ = godotenv.Load()
	log := logger.New()
	defer log.Sync()

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatal("failed to init aws clients", zap.Error(err))
	}

	lineCfg := line.Config{
		ChannelSecret:      os.Getenv("LINE_CHANNEL_SECRET"),
		ChannelAccessToken: os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		LiffID:             os.Getenv("LIFF_ID"),
		AppURL:             os.Getenv("APP_URL"),
	}
	lineClient, err := line.NewClient(lineCfg)
	if err != nil {
		log.Fatal("failed to init line client", zap.Error(err))
	}

	cfg := handlers.HandlerConfig{
		Backstation: backstation.NewClient(os.Getenv("BACKSTATION_API_URL"), nil),
		Session:     booking.NewSession(),
		Cache:       booking.NewCache(clients.DynamoDB, os.Getenv("ORDERS_CACHE_TABLE"), 48*time.Hour),
		Publisher:   aws.NewPublisher(clients.SQS, os.Getenv("WEBHOOK_QUEUE_URL")),
		LineClient:  lineClient,
		LineConfig:  lineCfg,
		Logger:      log,
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP
	// server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		log.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			log.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
