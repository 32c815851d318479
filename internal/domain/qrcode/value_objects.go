package qrcode

import (
	"errors"
	"strings"
)

// MaxPayloadBytes is the capacity of a version-40 QR symbol in byte mode.
// Longer payloads would fail at encode time anyway; rejecting them in the
// domain keeps the store free of records that can never render.
const MaxPayloadBytes = 2953

var (
	ErrEmptyUserID    = errors.New("user id must not be empty")
	ErrEmptyPayload   = errors.New("payload must not be empty")
	ErrPayloadTooLong = errors.New("payload exceeds qr capacity")
)

type Payload struct {
	text string
}

func NewPayload(s string) (Payload, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Payload{}, ErrEmptyPayload
	}
	if len(t) > MaxPayloadBytes {
		return Payload{}, ErrPayloadTooLong
	}
	return Payload{text: t}, nil
}

func (p Payload) String() string { return p.text }

type UserID struct {
	value string
}

func NewUserID(s string) (UserID, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return UserID{}, ErrEmptyUserID
	}
	return UserID{value: v}, nil
}

func (u UserID) String() string { return u.value }
