package qrpayload

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize matches the 300px codes the mobile client renders.
const imageSize = 300

// Image renders the encoded payload for identifier as a QR PNG.
// High error correction so the code survives being printed on luggage tags.
func Image(identifier string) ([]byte, error) {
	png, err := qrcode.Encode(Encode(identifier), qrcode.High, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}
	return png, nil
}

// ImageDataURL renders the QR PNG as a data URL suitable for an <img> src.
func ImageDataURL(identifier string) (string, error) {
	png, err := Image(identifier)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
