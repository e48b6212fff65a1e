package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})

	return v
}

// createOrderStructValidation enforces the rules a single field tag cannot:
// pickup and delivery must differ, and platform order info comes as a pair.
func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)

	if req.PickupLocationID != "" && req.PickupLocationID == req.DeliveryLocationID {
		sl.ReportError(req.DeliveryLocationID, "deliveryLocationId", "DeliveryLocationID", "distinct_locations", "")
	}

	if (req.PlatformType == "") != (req.PlatformOrderID == "") {
		sl.ReportError(req.PlatformOrderID, "platformOrderId", "PlatformOrderID", "platform_pair", "")
	}
}
