package backstation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_QueryTripOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/platform-orders/trip/TRIP-42" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 7,
			"orderNumber": "TRIP-42",
			"statusText": "confirmed",
			"departureDate": "2026-09-01",
			"quantity": 3,
			"useQuantity": 1,
			"availableQuantity": 2,
			"contacts": {"name": "Hana", "phone": "0900000000"}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	order, err := c.QueryTripOrder(context.Background(), "TRIP-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderNumber != "TRIP-42" || order.AvailableQuantity != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Contacts.Name != "Hana" {
		t.Fatalf("contact not decoded: %+v", order.Contacts)
	}
}

func TestClient_UpstreamErrorPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "order not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.QueryKlookOrder(context.Background(), "KL-404")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "order not found" {
		t.Fatalf("upstream message lost: %q", apiErr.Message)
	}
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.GetOrder(context.Background(), "x")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
}

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": "order-1",
			"voucherId": "V-001",
			"status": "pending",
			"deliveryDate": "2026-09-01",
			"pickupTime": "10:30",
			"luggageCount": 2,
			"pickupLocation": {"id": "1", "name": "Port Terminal", "address": "1 Harbor Rd", "area": "north"},
			"deliveryLocation": {"id": "2", "name": "Seaside Hotel", "address": "9 Beach Ave", "area": "south"}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	rec, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		DeliveryDate:       "2026-09-01",
		PickupTime:         "10:30",
		LuggageCount:       2,
		PickupLocationID:   "1",
		DeliveryLocationID: "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "order-1" || rec.VoucherID != "V-001" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.PickupLocation.Name != "Port Terminal" {
		t.Fatalf("nested location not decoded: %+v", rec.PickupLocation)
	}
}
