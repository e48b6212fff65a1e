package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/metrics"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/scan"
)

// RegisterPlatformOrdersRoutes registers the explicit platform lookups.
func RegisterPlatformOrdersRoutes(r *gin.Engine, cfg HandlerConfig) {
	resolver := scan.NewResolver(cfg.Backstation, cfg.Session, 0)

	r.GET("/api/platform-orders/trip/:orderNumber", func(c *gin.Context) {
		res, err := resolver.QueryPlatformOrder(c.Request.Context(), scan.PlatformTrip, c.Param("orderNumber"))
		if err != nil {
			metrics.PlatformLookupsTotal.WithLabelValues("trip", "error").Inc()
			platformQueryError(c, err)
			return
		}
		metrics.PlatformLookupsTotal.WithLabelValues("trip", "ok").Inc()
		c.JSON(http.StatusOK, res.Trip)
	})

	r.GET("/api/platform-orders/klook/:reference", func(c *gin.Context) {
		res, err := resolver.QueryPlatformOrder(c.Request.Context(), scan.PlatformKlook, c.Param("reference"))
		if err != nil {
			metrics.PlatformLookupsTotal.WithLabelValues("klook", "error").Inc()
			platformQueryError(c, err)
			return
		}
		metrics.PlatformLookupsTotal.WithLabelValues("klook", "ok").Inc()
		c.JSON(http.StatusOK, res.Klook)
	})
}

// platformQueryError unwraps a resolver failure down to the Backstation's
// status when it provided one.
func platformQueryError(c *gin.Context, err error) {
	var apiErr *backstation.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "platform_query_failed", "detail": err.Error()})
}
