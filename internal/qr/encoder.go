// Package qr renders payload text into inline PNG data URIs.
package qr

import (
	"encoding/base64"

	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	dataURIPrefix = "data:image/png;base64,"
	imageSize     = 256
)

type PNGEncoder struct {
	level qrcode.RecoveryLevel
}

func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{level: qrcode.Medium}
}

var _ usecase.ImageEncoder = (*PNGEncoder)(nil)

// DataURI encodes data into a QR PNG and frames it as a data URI, the same
// representation browsers accept directly in an <img> src attribute.
func (e *PNGEncoder) DataURI(data string) (string, error) {
	png, err := qrcode.Encode(data, e.level, imageSize)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr image")
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// IsDataURI reports whether s carries the encoder's output framing.
func IsDataURI(s string) bool {
	return len(s) > len(dataURIPrefix) && s[:len(dataURIPrefix)] == dataURIPrefix
}

// DecodePNG strips the data URI framing and returns the raw PNG bytes.
func DecodePNG(dataURI string) ([]byte, error) {
	if !IsDataURI(dataURI) {
		return nil, errs.New("not a png data uri")
	}
	return base64.StdEncoding.DecodeString(dataURI[len(dataURIPrefix):])
}
