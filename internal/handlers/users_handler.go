package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/validation"
)

// RegisterUsersRoutes registers the user profile and delivery point proxies.
func RegisterUsersRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.PUT("/api/users/:lineUserId", func(c *gin.Context) {
		var req validation.UpdateUserRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		user, err := cfg.Backstation.UpdateUser(c.Request.Context(), c.Param("lineUserId"), backstation.UpdateUserRequest{
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			proxyError(c, err, "update_user_failed")
			return
		}
		c.JSON(http.StatusOK, profileFromRecord(user))
	})

	r.GET("/api/delivery-points", func(c *gin.Context) {
		points, err := cfg.Backstation.FetchDeliveryPoints(c.Request.Context())
		if err != nil {
			proxyError(c, err, "delivery_points_failed")
			return
		}
		c.JSON(http.StatusOK, points)
	})
}

// profileFromRecord converts the Backstation's user row into the LIFF profile
// shape the app renders.
func profileFromRecord(rec *backstation.UserRecord) booking.UserProfile {
	p := booking.UserProfile{
		UserID:      rec.LineUserID,
		DisplayName: rec.DisplayName,
	}
	if rec.Phone != nil {
		p.PhoneNumber = *rec.Phone
	}
	if rec.Email != nil {
		p.Email = *rec.Email
	}
	return p
}
