package qrpayload

import (
	"encoding/json"
	"errors"
	"strings"
)

// Payload kinds carried in the QR wire format.
const (
	KindBookingOrder  = "booking_order"
	KindPlatformOrder = "platform_order"
)

// Version is the forward-compatibility tag stamped on encoded payloads.
// It is carried but not interpreted beyond presence.
const Version = "v1"

// Known upstream booking platforms.
const (
	PlatformTrip  = "trip"
	PlatformKlook = "klook"
)

var (
	// ErrInvalidPayload means the scanned JSON has no recognizable kind discriminator.
	ErrInvalidPayload = errors.New("not a valid delivery order QR code")
	// ErrIncompletePayload means the kind was recognized but required fields are missing.
	ErrIncompletePayload = errors.New("QR code payload is incomplete")
	// ErrUnsupportedPayloadKind means the kind discriminator is not one we know.
	ErrUnsupportedPayloadKind = errors.New("unsupported QR code kind")
)

// OrderRef is the first-party order payload embedded in QR codes we generate.
type OrderRef struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`
	Version    string `json:"version"`
}

// PlatformOrderRef points at an order owned by one of the upstream platforms.
// OrderIdentifier is meaningful only inside that platform's namespace.
type PlatformOrderRef struct {
	Platform        string `json:"platform"`
	OrderIdentifier string `json:"orderIdentifier"`
	Kind            string `json:"kind"`
	Version         string `json:"version"`
}

// Decoded is the tagged union produced by Decode. Exactly one field is set.
type Decoded struct {
	Order         *OrderRef
	PlatformOrder *PlatformOrderRef
	// RawText holds the trimmed input when the scan was not JSON at all,
	// typically a platform voucher code printed as plain text.
	RawText string
}

// IsRaw reports whether the scan fell through to the plain-text case.
func (d Decoded) IsRaw() bool {
	return d.Order == nil && d.PlatformOrder == nil
}

// Encode builds the first-party QR payload for an order identifier.
// Pure function of its input; the output is the bit-exact wire contract.
func Encode(identifier string) string {
	b, _ := json.Marshal(OrderRef{
		Identifier: identifier,
		Kind:       KindBookingOrder,
		Version:    Version,
	})
	return string(b)
}

// Decode classifies raw scanned text.
//
// Only a JSON syntax failure falls back to the raw-text case: voucher codes
// from the upstream platforms are scanned as plain strings, not JSON, and must
// be accepted as a legitimate result rather than an error. Anything that
// parses as JSON but fails validation surfaces as a typed error.
func Decode(raw string) (Decoded, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return Decoded{RawText: strings.TrimSpace(raw)}, nil
		}
		return Decoded{}, err
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		// Valid JSON but not an object (a bare number, quoted string, array).
		return Decoded{}, ErrInvalidPayload
	}

	kind, _ := obj["kind"].(string)
	if kind == "" {
		return Decoded{}, ErrInvalidPayload
	}

	switch kind {
	case KindPlatformOrder:
		platform, _ := obj["platform"].(string)
		orderIdentifier, _ := obj["orderIdentifier"].(string)
		if platform == "" || orderIdentifier == "" {
			return Decoded{}, ErrIncompletePayload
		}
		version, _ := obj["version"].(string)
		return Decoded{PlatformOrder: &PlatformOrderRef{
			Platform:        platform,
			OrderIdentifier: orderIdentifier,
			Kind:            kind,
			Version:         version,
		}}, nil

	case KindBookingOrder:
		identifier, _ := obj["identifier"].(string)
		if identifier == "" {
			return Decoded{}, ErrIncompletePayload
		}
		version, _ := obj["version"].(string)
		return Decoded{Order: &OrderRef{
			Identifier: identifier,
			Kind:       kind,
			Version:    version,
		}}, nil

	default:
		return Decoded{}, ErrUnsupportedPayloadKind
	}
}
