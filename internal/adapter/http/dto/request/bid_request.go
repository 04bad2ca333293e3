package request

type BidSubmitRequest struct {
	MechanicID               string  `json:"mechanic_id" binding:"required"`
	Amount                   float64 `json:"amount" binding:"required"`
	Message                  string  `json:"message"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
}
