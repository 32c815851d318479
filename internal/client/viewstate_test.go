//go:build unit

package client_test

import (
	"errors"
	"testing"

	"qrkeep/internal/client"

	"github.com/stretchr/testify/assert"
)

func code(id, data string) client.QRCode {
	return client.QRCode{UserID: "u1", CodeID: id, Data: data}
}

func TestViewState_InitialFetch(t *testing.T) {
	t.Run("loading flag covers the outstanding fetch", func(t *testing.T) {
		s := client.NewViewState("u1")
		s.BeginLoading()
		assert.True(t, s.Loading())

		s.ApplyList([]client.QRCode{code("qr_1", "a")}, nil)
		assert.False(t, s.Loading())
		assert.Len(t, s.Codes(), 1)
	})

	t.Run("fetch failure is non-fatal and keeps prior state", func(t *testing.T) {
		s := client.NewViewState("u1")
		s.BeginLoading()
		s.ApplyList(nil, errors.New("connection refused"))

		assert.False(t, s.Loading())
		assert.Equal(t, "connection refused", s.Error())
		assert.Empty(t, s.Codes())

		// Actions keep working after a failed fetch.
		s.Append(code("qr_1", "a"))
		assert.Len(t, s.Codes(), 1)

		s.DismissError()
		assert.Empty(t, s.Error())
	})

	t.Run("nil list normalizes to empty", func(t *testing.T) {
		s := client.NewViewState("u1")
		s.ApplyList(nil, nil)
		assert.NotNil(t, s.Codes())
		assert.Empty(t, s.Codes())
	})
}

func TestViewState_OptimisticMutations(t *testing.T) {
	s := client.NewViewState("u1")
	s.ApplyList([]client.QRCode{code("qr_1", "a"), code("qr_2", "b")}, nil)

	// create: local append
	s.Append(code("qr_3", "c"))
	assert.Len(t, s.Codes(), 3)

	// update: map-replace keeps position
	s.Replace(code("qr_2", "b2"))
	codes := s.Codes()
	assert.Equal(t, "b2", codes[1].Data)
	assert.Equal(t, "qr_2", codes[1].CodeID)

	// delete: local filter
	s.Remove("qr_1")
	codes = s.Codes()
	assert.Len(t, codes, 2)
	assert.Equal(t, "qr_2", codes[0].CodeID)

	// removing an unknown id is a no-op
	s.Remove("qr_nope")
	assert.Len(t, s.Codes(), 2)

	// replacing an unknown id is a no-op
	s.Replace(code("qr_nope", "x"))
	assert.Len(t, s.Codes(), 2)
}

func TestViewState_CodesReturnsCopy(t *testing.T) {
	s := client.NewViewState("u1")
	s.ApplyList([]client.QRCode{code("qr_1", "a")}, nil)

	codes := s.Codes()
	codes[0].Data = "mutated"

	assert.Equal(t, "a", s.Codes()[0].Data)
}
