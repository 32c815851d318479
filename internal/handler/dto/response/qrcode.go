package response

import (
	"qrkeep/internal/domain/qrcode"
	"qrkeep/internal/usecase/queries"
)

// QRCodeResponse mirrors the stored record on the wire; createdAt is RFC 3339.
type QRCodeResponse struct {
	UserID    string `json:"userId"`
	CodeID    string `json:"qrCodeId"`
	Data      string `json:"data"`
	Image     string `json:"qrCodeImage"`
	CreatedAt string `json:"createdAt"`
}

func FromEntity(rec *qrcode.QRCode) *QRCodeResponse {
	return &QRCodeResponse{
		UserID:    rec.UserID().String(),
		CodeID:    rec.CodeID(),
		Data:      rec.Payload().String(),
		Image:     rec.Image(),
		CreatedAt: rec.CreatedAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func FromView(v *queries.QRCodeView) *QRCodeResponse {
	return &QRCodeResponse{
		UserID:    v.UserID,
		CodeID:    v.CodeID,
		Data:      v.Data,
		Image:     v.Image,
		CreatedAt: v.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func FromViewList(views []*queries.QRCodeView) []*QRCodeResponse {
	res := make([]*QRCodeResponse, len(views))
	for i, v := range views {
		res[i] = FromView(v)
	}
	return res
}

// GenerateQRCodeResponse is the canonical create envelope.
type GenerateQRCodeResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	QRCode  *QRCodeResponse `json:"qrCode,omitempty"`
}

// DeleteQRCodeResponse confirms a removal.
type DeleteQRCodeResponse struct {
	Message string `json:"message"`
}
