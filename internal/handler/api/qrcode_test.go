//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	domqr "qrkeep/internal/domain/qrcode"
	"qrkeep/internal/handler/api"
	resdto "qrkeep/internal/handler/dto/response"
	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase/queries"
	"qrkeep/tests/common/builder"
	"qrkeep/tests/common/httptest"
	"qrkeep/tests/common/testutil"
	commandsmock "qrkeep/tests/mock/commands"
	queriesmock "qrkeep/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QRCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQRCodeCommands
	mockQueries  *queriesmock.MockQRCodeQueries
	handler      *api.QRCodeHandler
}

func (s *QRCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQRCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQRCodeQueries(s.mockCtrl)
	s.handler = api.NewQRCodeHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/generate", s.handler.GenerateLegacy)
	apiGroup := s.router.Group("/api")
	apiGroup.GET("/user/:userId/qrcodes", s.handler.List)
	apiGroup.POST("/generate", s.handler.Generate)
	apiGroup.PUT("/qr/:qrCodeId", s.handler.Update)
	apiGroup.DELETE("/qr/:qrCodeId", s.handler.Delete)
}

func (s *QRCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQRCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(QRCodeHandlerTestSuite))
}

type testCaseQRCode struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestList
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestList() {
	b := builder.NewQRCodeBuilder()
	url := "/api/user/" + b.UserID + "/qrcodes"

	s.Run("success: returns the user's records", func() {
		views := []*queries.QRCodeView{
			b.BuildView(),
			b.With(func(qb *builder.QRCodeBuilder) { qb.Data = "second" }).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), b.UserID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var got []resdto.QRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 2)
		s.Equal(b.CodeID, got[0].CodeID)
		s.Equal(b.UserID, got[0].UserID)
		s.Equal("second", got[1].Data)
	})

	s.Run("success: a user with no records gets an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), b.UserID).Return([]*queries.QRCodeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("failure: store error maps to 500", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), b.UserID).
			Return(nil, errs.ErrDatabaseFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch QR codes")
	})
}

// ================================================================================
// TestGenerate
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestGenerate() {
	url := "/api/generate"

	b := builder.NewQRCodeBuilder()
	reqBody := b.BuildGenerateRequestDTO()

	s.Run("success: returns the created record in the envelope", func() {
		stored := b.BuildStored()
		s.mockCommands.EXPECT().Create(gomock.Any(), b.UserID, b.Data).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.GenerateQRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Success)
		s.Equal("QR Code created", got.Message)
		s.Require().NotNil(got.QRCode)
		s.Equal(b.CodeID, got.QRCode.CodeID)
		s.True(strings.HasPrefix(got.QRCode.Image, "data:image/png;base64,"))
	})

	s.Run("validation: missing fields map to 400", func() {
		cases := []testCaseQRCode{
			{name: "missing field: userId (required)", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: data (required)", mutate: testutil.Field("data", nil), expectCode: http.StatusBadRequest},
			{name: "empty data", mutate: testutil.Field("data", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("validation: domain rejection maps to 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.UserID, b.Data).
			Return(nil, domqr.ErrPayloadTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("failure: store error maps to 500", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.UserID, b.Data).
			Return(nil, errs.ErrDatabaseFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to generate QR code")
	})
}

// ================================================================================
// TestGenerateLegacy
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestGenerateLegacy() {
	url := "/generate"

	b := builder.NewQRCodeBuilder()
	reqBody := b.BuildGenerateRequestDTO()

	s.Run("success: confirmation envelope without the record", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.UserID, b.Data).
			Return(b.BuildStored(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.GenerateQRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Success)
		s.Equal("Data saved successfully", got.Message)
		s.Nil(got.QRCode)
	})

	s.Run("failure: store error maps to 500 Server Error", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.UserID, b.Data).
			Return(nil, errs.ErrDatabaseFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Server Error")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestUpdate() {
	b := builder.NewQRCodeBuilder()
	url := "/api/qr/" + b.CodeID
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns the repointed record", func() {
		stored := b.BuildStored()
		s.mockCommands.EXPECT().Update(gomock.Any(), b.CodeID, b.UserID, b.Data).
			Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var got resdto.GenerateQRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Success)
		s.Equal("QR Code updated", got.Message)
		s.Require().NotNil(got.QRCode)
		s.Equal(b.CodeID, got.QRCode.CodeID)
	})

	s.Run("failure: unknown code id maps to 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.CodeID, b.UserID, b.Data).
			Return(nil, errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR Code not found")
	})

	s.Run("failure: foreign record maps to 403", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.CodeID, b.UserID, b.Data).
			Return(nil, errs.ErrNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Unauthorized")
	})

	s.Run("validation: missing fields map to 400", func() {
		cases := []testCaseQRCode{
			{name: "missing field: userId (required)", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: data (required)", mutate: testutil.Field("data", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestDelete() {
	b := builder.NewQRCodeBuilder()
	url := "/api/qr/" + b.CodeID

	s.Run("success: confirmation message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), b.CodeID, "").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var got resdto.DeleteQRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("QR Code deleted successfully", got.Message)
	})

	s.Run("success: owner id forwarded from the query string", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), b.CodeID, b.UserID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?userId="+b.UserID, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("failure: unknown code id maps to 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), b.CodeID, "").
			Return(errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR Code not found")
	})

	s.Run("failure: foreign record maps to 403", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), b.CodeID, b.UserID).
			Return(errs.ErrNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?userId="+b.UserID, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Unauthorized")
	})
}
