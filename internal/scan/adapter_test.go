package scan

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeHost struct {
	ready     bool
	supported bool
	value     string
	err       error
	scanned   bool
}

func (h *fakeHost) IsReady() bool      { return h.ready }
func (h *fakeHost) SupportsScan() bool { return h.supported }
func (h *fakeHost) Scan(ctx context.Context) (string, error) {
	h.scanned = true
	return h.value, h.err
}

func TestCapture_NotInitialized(t *testing.T) {
	host := &fakeHost{ready: false, supported: true}
	a := NewAdapter(host, 0)

	_, err := a.Capture(context.Background())
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if host.scanned {
		t.Fatal("scan must not be attempted before preconditions pass")
	}
}

func TestCapture_UnsupportedDevice(t *testing.T) {
	host := &fakeHost{ready: true, supported: false}
	a := NewAdapter(host, 0)

	_, err := a.Capture(context.Background())
	if !errors.Is(err, ErrUnsupportedDevice) {
		t.Fatalf("expected ErrUnsupportedDevice, got %v", err)
	}
	if host.scanned {
		t.Fatal("scan must not be attempted on unsupported devices")
	}
}

func TestCapture_EmptyResultIsCancelled(t *testing.T) {
	host := &fakeHost{ready: true, supported: true, value: ""}
	a := NewAdapter(host, 0)

	_, err := a.Capture(context.Background())
	if !errors.Is(err, ErrScanCancelled) {
		t.Fatalf("expected ErrScanCancelled, got %v", err)
	}
}

func TestCapture_Success(t *testing.T) {
	host := &fakeHost{ready: true, supported: true, value: "XYZ-999"}
	a := NewAdapter(host, time.Second)

	got, err := a.Capture(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "XYZ-999" {
		t.Fatalf("expected raw scan value, got %q", got)
	}
}

func TestCapture_HostErrorWrapped(t *testing.T) {
	hostErr := errors.New("camera busy")
	host := &fakeHost{ready: true, supported: true, err: hostErr}
	a := NewAdapter(host, time.Second)

	_, err := a.Capture(context.Background())
	if !errors.Is(err, hostErr) {
		t.Fatalf("expected wrapped host error, got %v", err)
	}
}
