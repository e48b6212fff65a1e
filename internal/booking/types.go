package booking

import "time"

// Booking order statuses. The Backstation owns the real lifecycle; these are
// the values it hands back.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Location is a pickup or delivery point on the island.
type Location struct {
	ID      int    `json:"id" dynamodbav:"id"`
	Name    string `json:"name" dynamodbav:"name"`
	Address string `json:"address" dynamodbav:"address"`
	Area    string `json:"area,omitempty" dynamodbav:"area,omitempty"`
}

// Order is a first-party luggage delivery order. The authoritative copy lives
// in the Backstation; this struct is what the session and cache mirror hold.
type Order struct {
	ID               string    `json:"id" dynamodbav:"order_id"` // PK
	UserID           string    `json:"userId" dynamodbav:"user_id,omitempty"`
	UserName         string    `json:"userName" dynamodbav:"user_name,omitempty"`
	Status           string    `json:"status" dynamodbav:"status"`
	BookingDate      string    `json:"bookingDate" dynamodbav:"booking_date"` // YYYY-MM-DD
	PickupTime       string    `json:"pickupTime" dynamodbav:"pickup_time"`  // HH:MM
	LuggageCount     int       `json:"luggageCount" dynamodbav:"luggage_count"`
	PickupLocation   Location  `json:"pickupLocation" dynamodbav:"pickup_location"`
	DeliveryLocation Location  `json:"deliveryLocation" dynamodbav:"delivery_location"`
	SpecialNote      string    `json:"specialNote,omitempty" dynamodbav:"special_note,omitempty"`
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" dynamodbav:"updated_at"`
	QRCode           string    `json:"qrCode,omitempty" dynamodbav:"qr_code,omitempty"` // data URL
}

// UserProfile is the LINE-linked user record mirrored from the Backstation.
type UserProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}
