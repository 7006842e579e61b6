package dto

import "time"

type WithdrawalRequestDTO struct {
	Fullname      string  `json:"fullname"`
	CompanyID     string  `json:"companyId"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	AccountNumber string  `json:"accountNumber" validate:"required"`
	IFSCCode      string  `json:"ifscCode" validate:"required"`
}

type WithdrawalResponseDTO struct {
	RequestID string    `json:"requestId"`
	Amount    float64   `json:"amount"`
	PayINR    float64   `json:"payInr"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}
