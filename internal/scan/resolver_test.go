package scan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/backstation"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/booking"
	"github.com/roceil/SL-Delivery-Line-Liff/internal/qrpayload"
)

type fakePlatformClient struct {
	tripOrder  *backstation.TripOrder
	tripErr    error
	klookOrder *backstation.KlookOrder
	klookErr   error

	tripCalls  int
	klookCalls int
}

func (f *fakePlatformClient) QueryTripOrder(ctx context.Context, voucherCode string) (*backstation.TripOrder, error) {
	f.tripCalls++
	return f.tripOrder, f.tripErr
}

func (f *fakePlatformClient) QueryKlookOrder(ctx context.Context, resellerReference string) (*backstation.KlookOrder, error) {
	f.klookCalls++
	return f.klookOrder, f.klookErr
}

func newTestResolver(client *fakePlatformClient, session *booking.Session) *Resolver {
	if session == nil {
		session = booking.NewSession()
	}
	return NewResolver(client, session, time.Second)
}

func TestResolveAuto_TripWinsWithoutTouchingKlook(t *testing.T) {
	client := &fakePlatformClient{
		tripOrder: &backstation.TripOrder{OrderNumber: "TRIP-42"},
	}
	r := newTestResolver(client, nil)

	got, err := r.ResolveAuto(context.Background(), "TRIP-42")
	require.NoError(t, err)
	require.Equal(t, PlatformTrip, got.Platform)
	require.NotNil(t, got.Trip)
	require.Equal(t, 0, client.klookCalls, "klook must not be probed after trip succeeds")
}

func TestResolveAuto_FallsThroughToKlook(t *testing.T) {
	client := &fakePlatformClient{
		tripErr:    errors.New("not found"),
		klookOrder: &backstation.KlookOrder{ResellerReference: "KL-1"},
	}
	r := newTestResolver(client, nil)

	got, err := r.ResolveAuto(context.Background(), "KL-1")
	require.NoError(t, err)
	require.Equal(t, PlatformKlook, got.Platform)
	require.Equal(t, 1, client.tripCalls)
	require.Equal(t, 1, client.klookCalls)
}

func TestResolveAuto_BothFailUnified(t *testing.T) {
	client := &fakePlatformClient{
		tripErr:  errors.New("trip exploded"),
		klookErr: errors.New("klook exploded"),
	}
	r := newTestResolver(client, nil)

	_, err := r.ResolveAuto(context.Background(), "???")
	require.ErrorIs(t, err, ErrNoMatchingPlatformOrder)
	// individual upstream reasons are intentionally discarded
	require.NotContains(t, err.Error(), "exploded")
}

func TestResolveAuto_CustomPlatformOrder(t *testing.T) {
	client := &fakePlatformClient{
		klookOrder: &backstation.KlookOrder{ResellerReference: "KL-1"},
	}
	r := newTestResolver(client, nil)
	r.Platforms = []Platform{PlatformKlook, PlatformTrip}

	got, err := r.ResolveAuto(context.Background(), "KL-1")
	require.NoError(t, err)
	require.Equal(t, PlatformKlook, got.Platform)
	require.Equal(t, 0, client.tripCalls, "klook-first ordering must not touch trip")
}

func TestQueryPlatformOrder_PreservesUpstreamReason(t *testing.T) {
	upstream := &backstation.APIError{StatusCode: 404, Message: "order not found"}
	client := &fakePlatformClient{tripErr: upstream}
	r := newTestResolver(client, nil)

	_, err := r.QueryPlatformOrder(context.Background(), PlatformTrip, "TRIP-42")

	var qerr *PlatformQueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, PlatformTrip, qerr.Platform)
	require.ErrorIs(t, err, upstream)
	require.Contains(t, err.Error(), "order not found")
}

func TestQueryPlatformOrder_UnknownPlatform(t *testing.T) {
	r := newTestResolver(&fakePlatformClient{}, nil)

	_, err := r.QueryPlatformOrder(context.Background(), Platform("expedia"), "x")
	require.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestResolve_FirstPartyHitsSession(t *testing.T) {
	session := booking.NewSession()
	session.Add(booking.Order{ID: "order-1", Status: booking.StatusPending})

	client := &fakePlatformClient{}
	r := newTestResolver(client, session)

	decoded, err := qrpayload.Decode(qrpayload.Encode("order-1"))
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), decoded)
	require.NoError(t, err)
	require.NotNil(t, res.Order)
	require.Equal(t, "order-1", res.Order.ID)
	require.Equal(t, 0, client.tripCalls+client.klookCalls, "local lookup must not hit the network")
}

func TestResolve_FirstPartyMiss(t *testing.T) {
	r := newTestResolver(&fakePlatformClient{}, nil)

	decoded, err := qrpayload.Decode(qrpayload.Encode("ghost"))
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), decoded)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestResolve_PlatformPayloadGoesToNamedUpstream(t *testing.T) {
	client := &fakePlatformClient{
		klookOrder: &backstation.KlookOrder{ResellerReference: "KL-1"},
	}
	r := newTestResolver(client, nil)

	decoded, err := qrpayload.Decode(`{"platform":"klook","orderIdentifier":"KL-1","kind":"platform_order","version":"v1"}`)
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), decoded)
	require.NoError(t, err)
	require.Equal(t, PlatformKlook, res.PlatformOrder.Platform)
	require.Equal(t, 0, client.tripCalls, "explicit platform must not probe the other upstream")
}

func TestResolve_RawTextRunsAutoProbe(t *testing.T) {
	client := &fakePlatformClient{
		tripOrder: &backstation.TripOrder{OrderNumber: "XYZ-999"},
	}
	r := newTestResolver(client, nil)

	decoded, err := qrpayload.Decode("XYZ-999")
	require.NoError(t, err)
	require.True(t, decoded.IsRaw())

	res, err := r.Resolve(context.Background(), decoded)
	require.NoError(t, err)
	require.Equal(t, PlatformTrip, res.PlatformOrder.Platform)
}
