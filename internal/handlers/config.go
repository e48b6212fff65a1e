package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/aws"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/line"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Backstation *backstation.Client
	Session     *booking.Session
	Cache       *booking.Cache
	Publisher   *aws.Publisher
	LineClient  *linebot.Client
	LineConfig  line.Config
	Logger      *zap.Logger
}

// RegisterRoutes wires every API route group onto the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	RegisterOrdersRoutes(r, cfg)
	RegisterPlatformOrdersRoutes(r, cfg)
	RegisterScanRoutes(r, cfg)
	RegisterUsersRoutes(r, cfg)
	RegisterLineRoutes(r, cfg)
}

// proxyError writes an upstream failure through, preserving the Backstation's
// status code and message when it sent one.
func proxyError(c *gin.Context, err error, fallbackMsg string) {
	var apiErr *backstation.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg, "detail": err.Error()})
}
