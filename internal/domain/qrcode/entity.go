package qrcode

import (
	"time"

	"qrkeep/internal/pkg/codeid"
)

// QRCode is the sole persisted entity: a user-owned payload together with its
// rendered image. The code id is assigned once at creation and never changes;
// the image is recomputed whenever the payload changes.
type QRCode struct {
	userID    UserID
	codeID    string
	payload   Payload
	image     string
	createdAt time.Time
}

func NewQRCode(userIDValue, payloadText, image string, now time.Time) (*QRCode, error) {
	userID, err := NewUserID(userIDValue)
	if err != nil {
		return nil, err
	}

	payload, err := NewPayload(payloadText)
	if err != nil {
		return nil, err
	}

	return &QRCode{
		userID:    userID,
		codeID:    codeid.New(),
		payload:   payload,
		image:     image,
		createdAt: now,
	}, nil
}

// Reconstruct rebuilds an entity from stored fields without re-validating or
// re-assigning the code id.
func Reconstruct(userID, codeID, payloadText, image string, createdAt time.Time) *QRCode {
	return &QRCode{
		userID:    UserID{value: userID},
		codeID:    codeID,
		payload:   Payload{text: payloadText},
		image:     image,
		createdAt: createdAt,
	}
}

// Repoint replaces the payload and its image together, preserving the
// image-matches-payload invariant.
func (q *QRCode) Repoint(payloadText, image string) error {
	payload, err := NewPayload(payloadText)
	if err != nil {
		return err
	}
	q.payload = payload
	q.image = image
	return nil
}

func (q *QRCode) OwnedBy(userID string) bool {
	return q.userID.String() == userID
}

func (q *QRCode) UserID() UserID       { return q.userID }
func (q *QRCode) CodeID() string       { return q.codeID }
func (q *QRCode) Payload() Payload     { return q.payload }
func (q *QRCode) Image() string        { return q.image }
func (q *QRCode) CreatedAt() time.Time { return q.createdAt }
