package validation

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	DeliveryDate       string `json:"deliveryDate" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	PickupTime         string `json:"pickupTime" validate:"required,datetime=15:04"`        // HH:MM
	LuggageCount       int    `json:"luggageCount" validate:"required,min=1"`
	PickupLocationID   string `json:"pickupLocationId" validate:"required"`
	DeliveryLocationID string `json:"deliveryLocationId" validate:"required"`
	LineName           string `json:"lineName,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Notes              string `json:"notes,omitempty"`
	LineUserID         string `json:"lineUserId,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	// set when the booking was created from a scanned platform order
	PlatformType    string `json:"platformType,omitempty" validate:"omitempty,oneof=trip klook"`
	PlatformOrderID string `json:"platformOrderId,omitempty"`
}

// ResolveScanRequest is the payload for POST /api/scan/resolve.
type ResolveScanRequest struct {
	Text string `json:"text" validate:"required"` // raw scanned text, JSON or plain voucher code
}

// UpdateUserRequest is the payload for PUT /api/users/:lineUserId.
type UpdateUserRequest struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}
