package api

import (
	"net/http"

	qrdomain "qrkeep/internal/domain/qrcode"
	reqdto "qrkeep/internal/handler/dto/request"
	resdto "qrkeep/internal/handler/dto/response"
	"qrkeep/internal/handler/httperr"
	"qrkeep/internal/handler/middleware"
	"qrkeep/internal/pkg/errs"
	"qrkeep/internal/usecase/commands"
	"qrkeep/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	cmds commands.QRCodeCommands
	q    queries.QRCodeQueries
}

func NewQRCodeHandler(cmds commands.QRCodeCommands, q queries.QRCodeQueries) *QRCodeHandler {
	return &QRCodeHandler{cmds: cmds, q: q}
}

// actorID prefers a verified session identity over the client-supplied value.
func actorID(c *gin.Context, bodyUserID string) string {
	if sessionUserID := middleware.GetSessionUserID(c); sessionUserID != "" {
		return sessionUserID
	}
	return bodyUserID
}

// @Summary List user QR codes
// @Description List all QR codes owned by a user, in store-native order
// @Tags qrcodes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.QRCodeResponse
// @Failure 500 {object} map[string]string
// @Router /api/user/{userId}/qrcodes [get]
func (h *QRCodeHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch QR codes", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromViewList(views))
}

// @Summary Generate QR code
// @Description Create a new QR code record and render its image
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateQRCodeRequest true "Generate request"
// @Success 200 {object} resdto.GenerateQRCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/generate [post]
func (h *QRCodeHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rec, err := h.cmds.Create(c.Request.Context(), actorID(c, req.UserID), req.Data)
	if err != nil {
		if isValidationErr(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate QR code", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.GenerateQRCodeResponse{
		Success: true,
		Message: "QR Code created",
		QRCode:  resdto.FromEntity(rec),
	})
}

// GenerateLegacy serves the historical /generate route. It shares the
// multi-record create flow; the old single-record-per-user upsert is gone.
// @Summary Generate QR code (legacy)
// @Description Legacy create path returning only a confirmation envelope
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateQRCodeRequest true "Generate request"
// @Success 200 {object} resdto.GenerateQRCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /generate [post]
func (h *QRCodeHandler) GenerateLegacy(c *gin.Context) {
	var req reqdto.GenerateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if _, err := h.cmds.Create(c.Request.Context(), actorID(c, req.UserID), req.Data); err != nil {
		if isValidationErr(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server Error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.GenerateQRCodeResponse{
		Success: true,
		Message: "Data saved successfully",
	})
}

// @Summary Update QR code
// @Description Update a QR code's payload, re-rendering its image
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param qrCodeId path string true "QR code ID"
// @Param request body reqdto.UpdateQRCodeRequest true "Update request"
// @Success 200 {object} resdto.GenerateQRCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/qr/{qrCodeId} [put]
func (h *QRCodeHandler) Update(c *gin.Context) {
	codeID := c.Param("qrCodeId")

	var req reqdto.UpdateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rec, err := h.cmds.Update(c.Request.Context(), codeID, actorID(c, req.UserID), req.Data)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrQRCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "QR Code not found", nil)
		case errs.Is(err, errs.ErrNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unauthorized", nil)
		case isValidationErr(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update QR code", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.GenerateQRCodeResponse{
		Success: true,
		Message: "QR Code updated",
		QRCode:  resdto.FromEntity(rec),
	})
}

// @Summary Delete QR code
// @Description Delete a QR code by its ID
// @Tags qrcodes
// @Produce json
// @Param qrCodeId path string true "QR code ID"
// @Param userId query string false "Owner ID for the ownership check"
// @Success 200 {object} resdto.DeleteQRCodeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/qr/{qrCodeId} [delete]
func (h *QRCodeHandler) Delete(c *gin.Context) {
	codeID := c.Param("qrCodeId")

	err := h.cmds.Delete(c.Request.Context(), codeID, actorID(c, c.Query("userId")))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrQRCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "QR Code not found", nil)
		case errs.Is(err, errs.ErrNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unauthorized", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete QR code", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteQRCodeResponse{Message: "QR Code deleted successfully"})
}

func isValidationErr(err error) bool {
	return errs.Is(err, qrdomain.ErrEmptyPayload) ||
		errs.Is(err, qrdomain.ErrPayloadTooLong) ||
		errs.Is(err, qrdomain.ErrEmptyUserID)
}
