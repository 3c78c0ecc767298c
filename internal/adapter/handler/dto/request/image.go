package request

type DeleteImageRequest struct {
	KeyLow  string `json:"key_low" binding:"required"`
	KeyHigh string `json:"key_high" binding:"required"`
}
