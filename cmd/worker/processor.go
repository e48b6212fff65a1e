package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/aws"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/line"
)

// replier is satisfied by *line.Replier; tests swap in fakes.
type replier interface {
	Reply(ctx context.Context, msg line.WebhookMessage) error
}

// Processor answers queued webhook events with canned replies.
type Processor struct {
	replier replier
	metrics *aws.MetricPublisher
	log     *zap.Logger
}

// NewProcessor wires the reply sender and the metric publisher.
func NewProcessor(r replier, metrics *aws.MetricPublisher, log *zap.Logger) *Processor {
	return &Processor{replier: r, metrics: metrics, log: log}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, the
			// message goes to the DLQ.
			p.log.Error("worker error", zap.Error(err))
			return err
		}
	}

	if p.metrics != nil {
		if err := p.metrics.PutCount(ctx, "WebhookEventsProcessed", float64(len(ev.Records)), nil); err != nil {
			// a metric gap is not worth re-driving replies over
			p.log.Warn("metric publish failed", zap.Error(err))
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg WorkerMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	p.log.Info("replying to webhook event",
		zap.String("event_type", msg.EventType),
		zap.String("user_id", msg.UserID))

	if err := p.replier.Reply(ctx, msg); err != nil {
		// Reply tokens are single-use and short-lived; a failed reply is
		// retried by the queue until the token expires, then dead-letters.
		return fmt.Errorf("reply failed: %w", err)
	}
	return nil
}
