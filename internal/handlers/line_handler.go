package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/line"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/metrics"
)

// RegisterLineRoutes registers the webhook ingest and rich menu setup.
//
// Webhook events are answered out of band: the handler verifies the
// signature, reduces each event to the fields the reply worker needs, and
// enqueues them. LINE retries on non-200, so enqueue failures surface as 500.
func RegisterLineRoutes(r *gin.Engine, cfg HandlerConfig) {
	r.POST("/api/line/webhook", func(c *gin.Context) {
		ctx := c.Request.Context()

		events, err := cfg.LineClient.ParseRequest(c.Request)
		if err != nil {
			if errors.Is(err, linebot.ErrInvalidSignature) {
				c.JSON(http.StatusForbidden, gin.H{"error": "invalid_signature"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_webhook_body", "msg": err.Error()})
			return
		}

		for _, msg := range line.ReduceEvents(events) {
			body, merr := json.Marshal(msg)
			if merr != nil {
				cfg.Logger.Error("marshal webhook message", zap.Error(merr))
				continue
			}

			attrs := map[string]string{
				"event_type":     msg.EventType,
				"correlation_id": uuid.NewString(),
			}
			if err := cfg.Publisher.SendWebhookMessage(ctx, string(body), attrs); err != nil {
				cfg.Logger.Error("enqueue webhook message failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue_failed"})
				return
			}
			metrics.WebhookEventsTotal.WithLabelValues(msg.EventType).Inc()
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/line/rich-menu/create", func(c *gin.Context) {
		id, err := line.SetupRichMenu(c.Request.Context(), cfg.LineClient, cfg.LineConfig)
		if err != nil {
			cfg.Logger.Error("rich menu setup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rich_menu_setup_failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"richMenuId": id})
	})
}
