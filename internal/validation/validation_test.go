package validation

import "testing"

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		DeliveryDate:       "2026-09-01",
		PickupTime:         "10:30",
		LuggageCount:       2,
		PickupLocationID:   "1",
		DeliveryLocationID: "2",
		LineName:           "Hana",
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validCreateRequest()); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateOrderRequest_BadDateAndTime(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.DeliveryDate = "01/09/2026"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for date format, got nil")
	}

	req = validCreateRequest()
	req.PickupTime = "10:30:00"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for time format, got nil")
	}
}

func TestCreateOrderRequest_SameLocations(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.DeliveryLocationID = req.PickupLocationID
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for identical locations, got nil")
	}
}

func TestCreateOrderRequest_PlatformPair(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.PlatformType = "trip"
	// PlatformOrderID missing
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for dangling platform type, got nil")
	}

	req.PlatformOrderID = "TRIP-42"
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid platform pair, got %v", err)
	}

	req.PlatformType = "expedia"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown platform, got nil")
	}
}

func TestCreateOrderRequest_MissingFields(t *testing.T) {
	v := New()

	if err := v.Struct(CreateOrderRequest{}); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestResolveScanRequest(t *testing.T) {
	v := New()

	if err := v.Struct(ResolveScanRequest{}); err == nil {
		t.Fatal("expected validation error for empty text, got nil")
	}
	if err := v.Struct(ResolveScanRequest{Text: "XYZ-999"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}
