package dto

import "time"

type UserStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

type RequestStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type AdminUserDTO struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	SponsorID string    `json:"sponsorId"`
	Country   string    `json:"country"`
	Package   string    `json:"package"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminDepositDTO struct {
	RequestID     string    `json:"requestId"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	ReceiptURL    string    `json:"receiptUrl"`
	Status        string    `json:"status"`
	Credited      bool      `json:"credited"`
	Date          time.Time `json:"date"`
}

type AdminWithdrawalDTO struct {
	RequestID     string    `json:"requestId"`
	UserID        string    `json:"userId"`
	Fullname      string    `json:"fullname"`
	Amount        float64   `json:"amount"`
	PayINR        float64   `json:"payInr"`
	AccountNumber string    `json:"accountNumber"`
	IFSCCode      string    `json:"ifscCode"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

type DashboardResponseDTO struct {
	TotalUsers         int     `json:"totalUsers"`
	ActiveUsers        int     `json:"activeUsers"`
	PendingDeposits    int     `json:"pendingDeposits"`
	ApprovedVolume     float64 `json:"approvedVolume"`
	PendingWithdrawals int     `json:"pendingWithdrawals"`
}
