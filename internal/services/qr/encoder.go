// Package qr renders invoice callback references as QR codes.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// Encoder turns text into a scannable code.
type Encoder interface {
	// EncodePNG renders content at the highest error correction level.
	EncodePNG(content string) ([]byte, error)
	// EncodeTerminal renders content as block characters for log output.
	EncodeTerminal(content string) (string, error)
}

type encoder struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewEncoder returns an Encoder using recovery level H. go-qrcode picks the
// mask pattern itself.
func NewEncoder(size int) Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &encoder{size: size, level: qrcode.Highest}
}

func (e *encoder) EncodePNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, e.level, e.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR image: %w", err)
	}
	return png, nil
}

func (e *encoder) EncodeTerminal(content string) (string, error) {
	q, err := qrcode.New(content, e.level)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR text: %w", err)
	}
	return q.ToSmallString(false), nil
}
