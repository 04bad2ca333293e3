package request

type EscrowAuthorizeRequest struct {
	BidID string `json:"bid_id" binding:"required"`
}

type EscrowCaptureRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}
