package backstation

// CreateOrderRequest is the body forwarded to POST /api/orders on the
// Backstation. The LINE user fields let the Backstation upsert its users
// table as a side effect of order creation.
type CreateOrderRequest struct {
	DeliveryDate       string `json:"deliveryDate"` // YYYY-MM-DD
	PickupTime         string `json:"pickupTime"`   // HH:MM
	LuggageCount       int    `json:"luggageCount"`
	PickupLocationID   string `json:"pickupLocationId"`
	DeliveryLocationID string `json:"deliveryLocationId"`
	LineName           string `json:"lineName,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Notes              string `json:"notes,omitempty"`
	LineUserID         string `json:"lineUserId,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	Email              string `json:"email,omitempty"`
	// set when the booking was created from a scanned platform order
	PlatformType    string `json:"platformType,omitempty"` // "trip" or "klook"
	PlatformOrderID string `json:"platformOrderId,omitempty"`
}

// OrderLocation is the location shape the Backstation returns on orders.
type OrderLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Area    string `json:"area"`
}

// OrderRecord is an order as the Backstation reports it.
type OrderRecord struct {
	ID               string        `json:"id"`
	VoucherID        string        `json:"voucherId,omitempty"`
	Category         string        `json:"category"`
	LineName         string        `json:"lineName"`
	Phone            string        `json:"phone"`
	DeliveryDate     string        `json:"deliveryDate"`
	PickupTime       string        `json:"pickupTime"`
	LuggageCount     int           `json:"luggageCount"`
	Status           string        `json:"status"`
	PickupLocation   OrderLocation `json:"pickupLocation"`
	DeliveryLocation OrderLocation `json:"deliveryLocation"`
	Notes            string        `json:"notes"`
	CreatedAt        string        `json:"createdAt"`
	UpdatedAt        string        `json:"updatedAt"`
}

// OrderIDRef is the minimal response of the by-voucher lookup.
type OrderIDRef struct {
	ID string `json:"id"`
}

// Contact is the traveller contact attached to platform orders.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TripOrder is a read-only snapshot of a Trip platform order, keyed by the
// platform's own voucher code.
type TripOrder struct {
	ID                int     `json:"id"`
	OrderNumber       string  `json:"orderNumber"`
	ProductID         int     `json:"productId"`
	Status            int     `json:"status"`
	StatusText        string  `json:"statusText"`
	DepartureDate     string  `json:"departureDate"`
	Quantity          int     `json:"quantity"`
	UseQuantity       int     `json:"useQuantity"`
	CancelQuantity    int     `json:"cancelQuantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	Contacts          Contact `json:"contacts"`
	Vouchers          string  `json:"vouchers,omitempty"`
	ItemID            string  `json:"itemId,omitempty"`
	SequenceID        string  `json:"sequenceId,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// KlookOrder is a read-only snapshot of a Klook platform order, keyed by the
// reseller reference.
type KlookOrder struct {
	ID                int     `json:"id"`
	ResellerReference string  `json:"resellerReference"`
	Status            int     `json:"status"`
	StatusText        string  `json:"statusText"`
	StatusCode        string  `json:"statusCode,omitempty"`
	ProductID         int     `json:"productId"`
	DepartureDate     string  `json:"departureDate"`
	Quantity          int     `json:"quantity"`
	UseQuantity       int     `json:"useQuantity"`
	CancelQuantity    int     `json:"cancelQuantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	Contacts          Contact `json:"contacts"`
	Notes             string  `json:"notes,omitempty"`
	OptionID          string  `json:"optionId,omitempty"`
	UUID              string  `json:"uuid,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// DeliveryPoint is a bookable pickup/delivery location.
type DeliveryPoint struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	TypeID    int      `json:"typeId"`
	Address   string   `json:"address"`
	Area      string   `json:"area"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	CreatedAt string   `json:"createdAt"`
}

// UpdateUserRequest carries the editable profile fields.
type UpdateUserRequest struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserRecord is the Backstation's user row for a LINE user.
type UserRecord struct {
	UserID      int     `json:"userId"`
	LineUserID  string  `json:"lineUserId"`
	DisplayName string  `json:"displayName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	MemberLevel int     `json:"memberLevel"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
