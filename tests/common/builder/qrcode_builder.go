//go:build unit || e2e

package builder

import (
	"time"

	domqr "qrkeep/internal/domain/qrcode"
	reqdto "qrkeep/internal/handler/dto/request"
	"qrkeep/internal/pkg/codeid"
	"qrkeep/internal/usecase/queries"
)

type QRCodeBuilder struct {
	UserID    string
	CodeID    string
	Data      string
	Image     string
	CreatedAt time.Time
}

func NewQRCodeBuilder() *QRCodeBuilder {
	return &QRCodeBuilder{
		UserID:    "user-123",
		CodeID:    codeid.New(),
		Data:      "https://example.com",
		Image:     "data:image/png;base64,aGVsbG8=",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *QRCodeBuilder) With(mutate func(*QRCodeBuilder)) *QRCodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QRCodeBuilder) BuildDomain() (*domqr.QRCode, error) {
	return domqr.NewQRCode(b.UserID, b.Data, b.Image, b.CreatedAt)
}

func (b *QRCodeBuilder) BuildStored() *domqr.QRCode {
	return domqr.Reconstruct(b.UserID, b.CodeID, b.Data, b.Image, b.CreatedAt)
}

func (b *QRCodeBuilder) BuildGenerateRequestDTO() reqdto.GenerateQRCodeRequest {
	return reqdto.GenerateQRCodeRequest{
		UserID: b.UserID,
		Data:   b.Data,
	}
}

func (b *QRCodeBuilder) BuildUpdateRequestDTO() reqdto.UpdateQRCodeRequest {
	return reqdto.UpdateQRCodeRequest{
		UserID: b.UserID,
		Data:   b.Data,
	}
}

func (b *QRCodeBuilder) BuildView() *queries.QRCodeView {
	return &queries.QRCodeView{
		UserID:    b.UserID,
		CodeID:    b.CodeID,
		Data:      b.Data,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
	}
}
