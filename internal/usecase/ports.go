package usecase

import (
	"context"

	"qrkeep/internal/domain/qrcode"
)

// QRCodeRepository is the document-store port. Implementations report
// failures as infra.RepositoryError so callers can branch on the kind
// (NOT_FOUND, DUPLICATE_KEY, DB_FAILURE) without knowing the backend.
type QRCodeRepository interface {
	// FindByUser returns all records owned by userID in store-native order.
	// A user with no records yields an empty slice, not an error.
	FindByUser(ctx context.Context, userID string) ([]*qrcode.QRCode, error)
	FindByCodeID(ctx context.Context, codeID string) (*qrcode.QRCode, error)
	// Insert fails with KindDuplicateKey if the code id already exists.
	Insert(ctx context.Context, rec *qrcode.QRCode) error
	// Update persists the mutable fields (payload and image) of rec, keyed by
	// its code id. Fails with KindNotFound if the record is absent.
	Update(ctx context.Context, rec *qrcode.QRCode) error
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, codeID string) (bool, error)
}

// ImageEncoder renders a payload into an inline image representation
// (a data URI) suitable for storing alongside the record.
type ImageEncoder interface {
	DataURI(data string) (string, error)
}
