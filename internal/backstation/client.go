package backstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError preserves the Backstation's status code and message so proxy
// handlers can pass upstream errors through instead of flattening them.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backstation returned status %d", e.StatusCode)
}

// Client is a thin typed HTTP client for the Backstation order-management
// REST API. The Backstation owns persistence and the real order lifecycle;
// everything here is request/response forwarding.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given base URL, e.g.
// "https://backstation.example.com". A nil httpClient gets a default with a
// 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// errorBody is the error envelope the Backstation sends on failures.
type errorBody struct {
	Message       string `json:"message"`
	StatusMessage string `json:"statusMessage"`
}

// doJSON performs a request and decodes a JSON response into out. Non-2xx
// responses become *APIError with the upstream message when one was sent.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if derr := json.NewDecoder(resp.Body).Decode(&eb); derr == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else {
				apiErr.Message = eb.StatusMessage
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// CreateOrder forwards an order creation to the Backstation.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderRecord, error) {
	var out OrderRecord
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*OrderRecord, error) {
	var out OrderRecord
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderByVoucher resolves a first-party voucher id to an order id.
func (c *Client) GetOrderByVoucher(ctx context.Context, voucherID string) (*OrderIDRef, error) {
	var out OrderIDRef
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/by-voucher/"+url.PathEscape(voucherID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserOrders fetches all orders belonging to a LINE user.
func (c *Client) ListUserOrders(ctx context.Context, lineUserID string) ([]OrderRecord, error) {
	var out []OrderRecord
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/user/"+url.PathEscape(lineUserID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryTripOrder looks up a Trip platform order by voucher code.
func (c *Client) QueryTripOrder(ctx context.Context, voucherCode string) (*TripOrder, error) {
	var out TripOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/platform-orders/trip/"+url.PathEscape(voucherCode), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryKlookOrder looks up a Klook platform order by reseller reference.
func (c *Client) QueryKlookOrder(ctx context.Context, resellerReference string) (*KlookOrder, error) {
	var out KlookOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/platform-orders/klook/"+url.PathEscape(resellerReference), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchDeliveryPoints lists the bookable locations.
func (c *Client) FetchDeliveryPoints(ctx context.Context) ([]DeliveryPoint, error) {
	var out []DeliveryPoint
	if err := c.doJSON(ctx, http.MethodGet, "/api/delivery-points", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser updates the editable fields of a LINE user's profile.
func (c *Client) UpdateUser(ctx context.Context, lineUserID string, req UpdateUserRequest) (*UserRecord, error) {
	var out UserRecord
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(lineUserID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
