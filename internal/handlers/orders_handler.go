package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/metrics"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/qrpayload"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/validation"
)

// RegisterOrdersRoutes registers the order proxy routes.
func RegisterOrdersRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.POST("/api/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		rec, err := cfg.Backstation.CreateOrder(ctx, backstation.CreateOrderRequest{
			DeliveryDate:       req.DeliveryDate,
			PickupTime:         req.PickupTime,
			LuggageCount:       req.LuggageCount,
			PickupLocationID:   req.PickupLocationID,
			DeliveryLocationID: req.DeliveryLocationID,
			LineName:           req.LineName,
			Phone:              req.Phone,
			Notes:              req.Notes,
			LineUserID:         req.LineUserID,
			DisplayName:        req.DisplayName,
			Email:              req.Email,
			PlatformType:       req.PlatformType,
			PlatformOrderID:    req.PlatformOrderID,
		})
		if err != nil {
			cfg.Logger.Warn("create order failed", zap.Error(err))
			proxyError(c, err, "create_order_failed")
			return
		}

		order := orderFromRecord(rec, req.LineUserID)

		// The QR identifier is the voucher id when the Backstation issues
		// one, otherwise the order id (older deployments).
		identifier := rec.VoucherID
		if identifier == "" {
			identifier = rec.ID
		}
		if qr, qerr := qrpayload.ImageDataURL(identifier); qerr == nil {
			order.QRCode = qr
		} else {
			cfg.Logger.Warn("qr generation failed", zap.String("order_id", rec.ID), zap.Error(qerr))
		}

		// best-effort mirror; the Backstation copy is authoritative
		if cfg.Cache != nil {
			if cerr := cfg.Cache.Put(ctx, order); cerr != nil {
				cfg.Logger.Warn("order cache put failed", zap.String("order_id", order.ID), zap.Error(cerr))
			}
		}
		cfg.Session.Add(order)

		metrics.OrdersCreatedTotal.Inc()
		c.Header("Location", "/api/orders/"+order.ID)
		c.JSON(http.StatusCreated, order)
	})

	r.GET("/api/orders", func(c *gin.Context) {
		lineUserID := c.Query("lineUserId")
		if lineUserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_line_user_id"})
			return
		}

		recs, err := cfg.Backstation.ListUserOrders(c.Request.Context(), lineUserID)
		if err != nil {
			proxyError(c, err, "list_orders_failed")
			return
		}

		orders := make([]booking.Order, 0, len(recs))
		for i := range recs {
			orders = append(orders, orderFromRecord(&recs[i], lineUserID))
		}
		cfg.Session.Replace(orders)

		c.JSON(http.StatusOK, orders)
	})

	r.GET("/api/orders/:id", func(c *gin.Context) {
		ctx := c.Request.Context()
		orderID := c.Param("id")

		rec, err := cfg.Backstation.GetOrder(ctx, orderID)
		if err == nil {
			c.JSON(http.StatusOK, orderFromRecord(rec, ""))
			return
		}

		// Backstation unreachable: serve the last mirrored copy if we hold one.
		if cfg.Cache != nil {
			if cached, cerr := cfg.Cache.Get(ctx, orderID); cerr == nil && cached != nil {
				cfg.Logger.Info("serving order from cache mirror", zap.String("order_id", orderID))
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		proxyError(c, err, "get_order_failed")
	})

	r.GET("/api/vouchers/:voucherId/order", func(c *gin.Context) {
		ref, err := cfg.Backstation.GetOrderByVoucher(c.Request.Context(), c.Param("voucherId"))
		if err != nil {
			proxyError(c, err, "voucher_lookup_failed")
			return
		}
		c.JSON(http.StatusOK, ref)
	})
}

// orderFromRecord converts the Backstation's order shape into the local one.
func orderFromRecord(rec *backstation.OrderRecord, lineUserID string) booking.Order {
	return booking.Order{
		ID:               rec.ID,
		UserID:           lineUserID,
		UserName:         rec.LineName,
		Status:           rec.Status,
		BookingDate:      rec.DeliveryDate,
		PickupTime:       rec.PickupTime,
		LuggageCount:     rec.LuggageCount,
		PickupLocation:   locationFromRecord(rec.PickupLocation),
		DeliveryLocation: locationFromRecord(rec.DeliveryLocation),
		SpecialNote:      rec.Notes,
		CreatedAt:        parseUpstreamTime(rec.CreatedAt),
		UpdatedAt:        parseUpstreamTime(rec.UpdatedAt),
	}
}

func locationFromRecord(loc backstation.OrderLocation) booking.Location {
	id, _ := strconv.Atoi(loc.ID)
	return booking.Location{
		ID:      id,
		Name:    loc.Name,
		Address: loc.Address,
		Area:    loc.Area,
	}
}

func parseUpstreamTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
