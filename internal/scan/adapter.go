package scan

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotInitialized means the LIFF session has not finished initializing.
	ErrNotInitialized = errors.New("LIFF session is not initialized yet")
	// ErrUnsupportedDevice means the device cannot open the scan camera.
	ErrUnsupportedDevice = errors.New("this device does not support QR scanning")
	// ErrScanCancelled means the scan UI closed without producing a value.
	// An empty result is a failure, never an empty success.
	ErrScanCancelled = errors.New("scan was cancelled or returned nothing")
)

// Host is the LIFF platform capability the adapter wraps. The real
// implementation lives in the embedded web runtime; tests provide fakes.
type Host interface {
	IsReady() bool
	SupportsScan() bool
	Scan(ctx context.Context) (string, error)
}

// Adapter exposes the host's barcode scanner as a single blocking call with
// precondition checks and a timeout, so a hung scan UI cannot suspend the
// caller forever.
type Adapter struct {
	host    Host
	timeout time.Duration
}

const defaultCaptureTimeout = 2 * time.Minute

// NewAdapter wraps a host. timeout <= 0 selects the default.
func NewAdapter(host Host, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}
	return &Adapter{host: host, timeout: timeout}
}

// Capture blocks until the scan UI returns a value or fails. Preconditions
// are checked before the camera is ever opened.
func (a *Adapter) Capture(ctx context.Context) (string, error) {
	if !a.host.IsReady() {
		return "", ErrNotInitialized
	}
	if !a.host.SupportsScan() {
		return "", ErrUnsupportedDevice
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	value, err := a.host.Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("scan failed: %w", err)
	}
	if value == "" {
		return "", ErrScanCancelled
	}
	return value, nil
}
