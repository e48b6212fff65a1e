package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/metrics"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/qrpayload"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/scan"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/validation"
)

// RegisterScanRoutes registers the scan resolve endpoint: raw scanned text in,
// resolved order out. The capture itself happens on the device; this is
// everything after it.
func RegisterScanRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	resolver := scan.NewResolver(cfg.Backstation, cfg.Session, 0)

	r.POST("/api/scan/resolve", func(c *gin.Context) {
		var req validation.ResolveScanRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		decoded, err := qrpayload.Decode(req.Text)
		if err != nil {
			metrics.ScanResolutionsTotal.WithLabelValues("failed").Inc()
			decodeError(c, err)
			return
		}

		result, err := resolver.Resolve(c.Request.Context(), decoded)
		if err != nil {
			metrics.ScanResolutionsTotal.WithLabelValues("failed").Inc()
			resolveError(c, err)
			return
		}

		if result.Order != nil {
			metrics.ScanResolutionsTotal.WithLabelValues("booking_order").Inc()
			c.JSON(http.StatusOK, gin.H{"kind": qrpayload.KindBookingOrder, "order": result.Order})
			return
		}

		metrics.ScanResolutionsTotal.WithLabelValues("platform_order").Inc()
		po := result.PlatformOrder
		body := gin.H{"kind": qrpayload.KindPlatformOrder, "platform": po.Platform}
		if po.Trip != nil {
			body["order"] = po.Trip
		} else {
			body["order"] = po.Klook
		}
		c.JSON(http.StatusOK, body)
	})
}

func decodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, qrpayload.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "msg": err.Error()})
	case errors.Is(err, qrpayload.ErrIncompletePayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "incomplete_payload", "msg": err.Error()})
	case errors.Is(err, qrpayload.ErrUnsupportedPayloadKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_payload_kind", "msg": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "decode_failed", "msg": err.Error()})
	}
}

func resolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scan.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found", "msg": err.Error()})
	case errors.Is(err, scan.ErrNoMatchingPlatformOrder):
		c.JSON(http.StatusNotFound, gin.H{"error": "no_matching_platform_order", "msg": err.Error()})
	case errors.Is(err, scan.ErrUnknownPlatform):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_platform", "msg": err.Error()})
	default:
		platformQueryError(c, err)
	}
}
