package request

// JobCreateRequest is the payload for posting a new repair job.
//
// `estimated_cost` is expressed in whole currency units and converted to
// cents at the boundary.

type JobCreateRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type JobCancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
