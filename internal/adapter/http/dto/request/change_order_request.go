package request

type ChangeOrderCreateRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Reason       string  `json:"reason"`
	TotalAmount  float64 `json:"total_amount" binding:"required"`
	MechanicName string  `json:"mechanic_name"`
}

type ChangeOrderApproveRequest struct {
	ApproverID string `json:"approver_id"`
}

type ChangeOrderRejectRequest struct {
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}
