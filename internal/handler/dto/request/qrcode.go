package request

// GenerateQRCodeRequest is shared by the canonical create endpoint and the
// legacy /generate route; both carry the owning user and the payload text.
type GenerateQRCodeRequest struct {
	UserID string `json:"userId" binding:"required"`
	Data   string `json:"data" binding:"required"`
}

type UpdateQRCodeRequest struct {
	UserID string `json:"userId" binding:"required"`
	Data   string `json:"data" binding:"required"`
}
