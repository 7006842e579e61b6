package dto

import "time"

type DepositRequestDTO struct {
	Name          string  `json:"name"`
	Currency      string  `json:"currency" validate:"required,oneof=INR USD Crypto"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
	ReceiptURL    string  `json:"receiptUrl"`
}

type DepositResponseDTO struct {
	RequestID string    `json:"requestId"`
	Currency  string    `json:"currency"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}
