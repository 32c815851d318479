// Package codeid generates external-facing QR code identifiers.
//
// Identifiers keep the historical "qr_" prefix but derive the remainder from a
// random UUID instead of a wall-clock timestamp, so concurrent creates within
// the same millisecond cannot collide.
package codeid

import (
	"strings"

	"github.com/google/uuid"
)

const Prefix = "qr_"

func New() string {
	return Prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Valid reports whether s looks like an identifier produced by New. It only
// checks the shape; existence is the store's concern.
func Valid(s string) bool {
	return strings.HasPrefix(s, Prefix) && len(s) > len(Prefix)
}
