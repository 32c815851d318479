package commands

import (
	"context"

	"qrkeep/internal/domain/qrcode"
	"qrkeep/internal/infra"
	"qrkeep/internal/pkg/clock"
	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase"
)

type QRCodeCommands interface {
	// Create encodes data, assigns a fresh code id and persists the record.
	Create(ctx context.Context, userID, data string) (*qrcode.QRCode, error)
	// Update repoints the record at new data, re-encoding the image before
	// anything is persisted. actorID must match the record's owner.
	Update(ctx context.Context, codeID, actorID, data string) (*qrcode.QRCode, error)
	// Delete removes the record. When actorID is non-empty it must match the
	// record's owner; an empty actorID deletes unconditionally.
	Delete(ctx context.Context, codeID, actorID string) error
}

type qrCodeCommandsImpl struct {
	repo    usecase.QRCodeRepository
	encoder usecase.ImageEncoder
	clock   clock.Clock
}

func NewQRCodeCommands(repo usecase.QRCodeRepository, encoder usecase.ImageEncoder, clk clock.Clock) QRCodeCommands {
	return &qrCodeCommandsImpl{repo: repo, encoder: encoder, clock: clk}
}

func (uc *qrCodeCommandsImpl) Create(ctx context.Context, userID, data string) (*qrcode.QRCode, error) {
	image, err := uc.encoder.DataURI(data)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncodeFailed)
	}

	rec, err := qrcode.NewQRCode(userID, data, image, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// Nothing is persisted on failure; the record either lands whole or not
	// at all.
	if err := uc.repo.Insert(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrQRCodeExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseFailure)
	}
	return rec, nil
}

func (uc *qrCodeCommandsImpl) Update(ctx context.Context, codeID, actorID, data string) (*qrcode.QRCode, error) {
	rec, err := uc.repo.FindByCodeID(ctx, codeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrQRCodeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseFailure)
	}
	if !rec.OwnedBy(actorID) {
		return nil, errs.ErrNotOwned
	}

	// The image is recomputed before the write so a stored record can never
	// carry an image for stale data.
	image, err := uc.encoder.DataURI(data)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncodeFailed)
	}
	if err := rec.Repoint(data, image); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrQRCodeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseFailure)
	}
	return rec, nil
}

func (uc *qrCodeCommandsImpl) Delete(ctx context.Context, codeID, actorID string) error {
	if actorID != "" {
		rec, err := uc.repo.FindByCodeID(ctx, codeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrQRCodeNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseFailure)
		}
		if !rec.OwnedBy(actorID) {
			return errs.ErrNotOwned
		}
	}

	deleted, err := uc.repo.Delete(ctx, codeID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseFailure)
	}
	if !deleted {
		return errs.ErrQRCodeNotFound
	}
	return nil
}
