//go:build unit

package qr_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"qrkeep/internal/qr"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeQR scans the PNG inside a data URI back into its payload text.
func decodeQR(t *testing.T, dataURI string) string {
	t.Helper()

	raw, err := qr.DecodePNG(dataURI)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)

	return result.GetText()
}

func TestPNGEncoder_DataURI(t *testing.T) {
	enc := qr.NewPNGEncoder()

	tests := []struct {
		name string
		data string
	}{
		{name: "plain text", data: "hello"},
		{name: "url", data: "https://a.example/path?q=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := enc.DataURI(tt.data)
			require.NoError(t, err)

			assert.True(t, qr.IsDataURI(uri))
			assert.Equal(t, tt.data, decodeQR(t, uri), "image must decode back to the input payload")
		})
	}
}

func TestPNGEncoder_DataURI_TooLong(t *testing.T) {
	enc := qr.NewPNGEncoder()

	_, err := enc.DataURI(strings.Repeat("a", 8000))
	assert.Error(t, err, "payloads beyond qr capacity must fail at encode time")
}

func TestDecodePNG_RejectsForeignStrings(t *testing.T) {
	_, err := qr.DecodePNG("https://not-a-data-uri.example")
	assert.Error(t, err)

	_, err = qr.DecodePNG("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}
