package queries

import (
	"context"
	"time"

	"qrkeep/internal/infra"
	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase"
)

// QRCodeView is the read-side projection of a stored record; field names match
// the wire format.
type QRCodeView struct {
	UserID    string    `json:"userId"`
	CodeID    string    `json:"qrCodeId"`
	Data      string    `json:"data"`
	Image     string    `json:"qrCodeImage"`
	CreatedAt time.Time `json:"createdAt"`
}

type QRCodeQueries interface {
	// ListByUser returns the user's records in store-native order; a user
	// with no records gets an empty slice.
	ListByUser(ctx context.Context, userID string) ([]*QRCodeView, error)
	GetByCodeID(ctx context.Context, codeID string) (*QRCodeView, error)
}

type qrCodeQueriesImpl struct {
	repo usecase.QRCodeRepository
}

func NewQRCodeQueries(repo usecase.QRCodeRepository) QRCodeQueries {
	return &qrCodeQueriesImpl{repo: repo}
}

func (q *qrCodeQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*QRCodeView, error) {
	recs, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseFailure)
	}

	views := make([]*QRCodeView, len(recs))
	for i, rec := range recs {
		views[i] = &QRCodeView{
			UserID:    rec.UserID().String(),
			CodeID:    rec.CodeID(),
			Data:      rec.Payload().String(),
			Image:     rec.Image(),
			CreatedAt: rec.CreatedAt(),
		}
	}
	return views, nil
}

func (q *qrCodeQueriesImpl) GetByCodeID(ctx context.Context, codeID string) (*QRCodeView, error) {
	rec, err := q.repo.FindByCodeID(ctx, codeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQRCodeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseFailure)
	}
	return &QRCodeView{
		UserID:    rec.UserID().String(),
		CodeID:    rec.CodeID(),
		Data:      rec.Payload().String(),
		Image:     rec.Image(),
		CreatedAt: rec.CreatedAt(),
	}, nil
}
