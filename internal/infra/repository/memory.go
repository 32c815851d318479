package repository

import (
	"context"
	"sync"

	"qrkeep/internal/domain/qrcode"
	"qrkeep/internal/infra"
	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase"
)

// MemoryQRCodeRepository is the in-process document store used by tests and by
// STORE_DRIVER=memory deployments. Store-native order is insertion order.
type MemoryQRCodeRepository struct {
	mu    sync.RWMutex
	byID  map[string]*qrcode.QRCode
	order []string
}

func NewMemoryQRCodeRepository() *MemoryQRCodeRepository {
	return &MemoryQRCodeRepository{byID: make(map[string]*qrcode.QRCode)}
}

var _ usecase.QRCodeRepository = (*MemoryQRCodeRepository)(nil)

func (r *MemoryQRCodeRepository) FindByUser(_ context.Context, userID string) ([]*qrcode.QRCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]*qrcode.QRCode, 0)
	for _, id := range r.order {
		if rec := r.byID[id]; rec != nil && rec.OwnedBy(userID) {
			recs = append(recs, copyOf(rec))
		}
	}
	return recs, nil
}

func (r *MemoryQRCodeRepository) FindByCodeID(_ context.Context, codeID string) (*qrcode.QRCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[codeID]
	if !ok {
		return nil, infra.RepoErr(infra.KindNotFound, "qr code not found")
	}
	return copyOf(rec), nil
}

func (r *MemoryQRCodeRepository) Insert(_ context.Context, rec *qrcode.QRCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.CodeID()]; exists {
		return infra.RepoErr(infra.KindDuplicateKey, "qr code id already exists")
	}
	r.byID[rec.CodeID()] = copyOf(rec)
	r.order = append(r.order, rec.CodeID())
	return nil
}

func (r *MemoryQRCodeRepository) Update(_ context.Context, rec *qrcode.QRCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[rec.CodeID()]
	if !ok {
		return infra.RepoErr(infra.KindNotFound, "qr code not found")
	}
	if err := stored.Repoint(rec.Payload().String(), rec.Image()); err != nil {
		return errs.Wrap(err, "failed to update stored record")
	}
	return nil
}

func (r *MemoryQRCodeRepository) Delete(_ context.Context, codeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[codeID]; !ok {
		return false, nil
	}
	delete(r.byID, codeID)
	for i, id := range r.order {
		if id == codeID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// copyOf keeps callers from mutating stored state through the returned
// pointer.
func copyOf(rec *qrcode.QRCode) *qrcode.QRCode {
	return qrcode.Reconstruct(
		rec.UserID().String(),
		rec.CodeID(),
		rec.Payload().String(),
		rec.Image(),
		rec.CreatedAt(),
	)
}
