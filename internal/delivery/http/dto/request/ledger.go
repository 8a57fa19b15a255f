package request

type RecordEarningsRequest struct {
	AdminID       string  `json:"admin_id"`
	Amount        float64 `json:"amount"`
	Source        string  `json:"source"`
	SettlementRef string  `json:"settlement_ref"`
	Description   string  `json:"description"`
}

type MarkPaidRequest struct {
	SettlementRef string `json:"settlement_ref"`
}
