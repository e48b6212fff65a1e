package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/aws"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/line"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/logger"
)

const metricNamespace = "SLDeliveryLiff/Worker"

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

	p := NewProcessor(
		line.NewReplier(lineClient, lineCfg.LiffURL()),
		aws.NewMetricPublisher(clients.CloudWatch, metricNamespace),
		log,
	)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if os.Getenv("RUN_LOCAL") == "true" {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"event_type":"message","reply_token":"local-token","text":"你好"}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			log.Fatal("local handler error", zap.Error(err))
		}
		return
	}

	lambda.Start(p.Handle)
}
