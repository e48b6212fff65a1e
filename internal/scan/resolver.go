package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/qrpayload"
)

// Platform identifies one of the upstream booking platforms.
type Platform string

const (
	PlatformTrip  Platform = qrpayload.PlatformTrip
	PlatformKlook Platform = qrpayload.PlatformKlook
)

var (
	// ErrNoMatchingPlatformOrder is the terminal failure of the auto-detect
	// probe. The individual upstream failures are deliberately not surfaced:
	// the caller only learns that no platform recognizes the identifier.
	ErrNoMatchingPlatformOrder = errors.New("no platform order matches this voucher code")
	// ErrUnknownPlatform means the platform discriminator is not trip or klook.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrOrderNotFound means a first-party payload did not match any order in
	// the booking session.
	ErrOrderNotFound = errors.New("order not found in current session")
)

// PlatformQueryError wraps an explicit-platform lookup failure. The upstream
// reason is preserved via Unwrap rather than discarded.
type PlatformQueryError struct {
	Platform Platform
	Err      error
}

func (e *PlatformQueryError) Error() string {
	return fmt.Sprintf("query %s order failed: %v", e.Platform, e.Err)
}

func (e *PlatformQueryError) Unwrap() error { return e.Err }

// PlatformClient is the slice of the Backstation client the resolver needs.
type PlatformClient interface {
	QueryTripOrder(ctx context.Context, voucherCode string) (*backstation.TripOrder, error)
	QueryKlookOrder(ctx context.Context, resellerReference string) (*backstation.KlookOrder, error)
}

// OrderFinder resolves first-party order ids against the booking session.
// Read-only from the resolver's perspective.
type OrderFinder interface {
	FindByID(id string) *booking.Order
}

// PlatformOrder is the outcome of a platform lookup. Exactly one of Trip or
// Klook is set, matching Platform.
type PlatformOrder struct {
	Platform Platform
	Trip     *backstation.TripOrder
	Klook    *backstation.KlookOrder
}

// Result is the outcome of resolving a decoded scan. Exactly one field is set.
type Result struct {
	Order         *booking.Order
	PlatformOrder *PlatformOrder
}

// Resolver turns decoded scans into orders. Dependencies are injected so the
// core is testable without a live session or network.
type Resolver struct {
	client  PlatformClient
	orders  OrderFinder
	timeout time.Duration

	// Platforms is the probe order for auto-detection. The sequence is the
	// tie-break policy: the first platform to answer wins.
	Platforms []Platform
}

const defaultProbeTimeout = 10 * time.Second

// NewResolver builds a Resolver with the default Trip-before-Klook probe
// order. timeout bounds each upstream probe; <= 0 selects the default.
func NewResolver(client PlatformClient, orders OrderFinder, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Resolver{
		client:    client,
		orders:    orders,
		timeout:   timeout,
		Platforms: []Platform{PlatformTrip, PlatformKlook},
	}
}

// QueryPlatformOrder dispatches to exactly one upstream lookup. Failures are
// wrapped in *PlatformQueryError with the upstream reason intact.
func (r *Resolver) QueryPlatformOrder(ctx context.Context, platform Platform, orderIdentifier string) (*PlatformOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	switch platform {
	case PlatformTrip:
		order, err := r.client.QueryTripOrder(ctx, orderIdentifier)
		if err != nil {
			return nil, &PlatformQueryError{Platform: platform, Err: err}
		}
		return &PlatformOrder{Platform: platform, Trip: order}, nil
	case PlatformKlook:
		order, err := r.client.QueryKlookOrder(ctx, orderIdentifier)
		if err != nil {
			return nil, &PlatformQueryError{Platform: platform, Err: err}
		}
		return &PlatformOrder{Platform: platform, Klook: order}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}
}

// ResolveAuto probes each platform in order until one recognizes the
// identifier. Scanned voucher codes carry no platform tag, so a sequential
// short-circuit probe stands in for an identifier-format classifier; the cost
// is at most one extra round trip on the failure path. Every upstream failure
// means "try next" regardless of its reason.
func (r *Resolver) ResolveAuto(ctx context.Context, orderIdentifier string) (*PlatformOrder, error) {
	for _, platform := range r.Platforms {
		order, err := r.QueryPlatformOrder(ctx, platform, orderIdentifier)
		if err == nil {
			return order, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, ErrNoMatchingPlatformOrder
}

// Resolve dispatches a decoded scan down the single path its tag selects:
// first-party payloads against the session, platform payloads to the named
// upstream, raw text through the auto-detect probe.
func (r *Resolver) Resolve(ctx context.Context, decoded qrpayload.Decoded) (*Result, error) {
	switch {
	case decoded.Order != nil:
		order := r.orders.FindByID(decoded.Order.Identifier)
		if order == nil {
			return nil, ErrOrderNotFound
		}
		return &Result{Order: order}, nil

	case decoded.PlatformOrder != nil:
		po, err := r.QueryPlatformOrder(ctx, Platform(decoded.PlatformOrder.Platform), decoded.PlatformOrder.OrderIdentifier)
		if err != nil {
			return nil, err
		}
		return &Result{PlatformOrder: po}, nil

	default:
		po, err := r.ResolveAuto(ctx, decoded.RawText)
		if err != nil {
			return nil, err
		}
		return &Result{PlatformOrder: po}, nil
	}
}
