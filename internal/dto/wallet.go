package dto

import "time"

type WalletResponseDTO struct {
	MainWallet  float64   `json:"mainWallet"`
	TotalBonus  float64   `json:"totalBonus"`
	DirectBonus float64   `json:"directBonus"`
	LevelBonus  float64   `json:"levelBonus"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type TransactionResponseDTO struct {
	TransactionID    string    `json:"transactionId"`
	Type             string    `json:"type"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	Description      string    `json:"description"`
	RelatedRequestID string    `json:"relatedRequestId"`
	BalanceAfter     float64   `json:"balanceAfter"`
	Date             time.Time `json:"date"`
}
