package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// QR code record errors
	ErrQRCodeNotFound = errors.New("qr code not found")
	ErrQRCodeExists   = errors.New("qr code id already exists")
	ErrNotOwned       = errors.New("qr code not owned by user")

	// Operation errors
	ErrEncodeFailed    = errors.New("qr image encoding failed")
	ErrDatabaseFailure = errors.New("database operation failed")
)
