package request

type InviteAdminRequest struct {
	WalletAddress   string  `json:"wallet_address"`
	DisplayName     string  `json:"display_name"`
	Role            string  `json:"role"`
	FeeSharePercent float64 `json:"fee_share_percent"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type SetFeeShareRequest struct {
	FeeSharePercent float64 `json:"fee_share_percent"`
}
