package dto

import "time"

type RegisterRequestDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required,min=7,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
	SponsorID   string `json:"sponsorId"`
	SponsorName string `json:"sponsorName"`
	Country     string `json:"country"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

type LoginRequestDTO struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

type ProfileResponseDTO struct {
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Mobile        string    `json:"mobile"`
	SponsorID     string    `json:"sponsorId"`
	SponsorName   string    `json:"sponsorName"`
	Country       string    `json:"country"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	IFSCCode      string    `json:"ifscCode"`
	USDTAddress   string    `json:"usdtAddress"`
	Package       string    `json:"package"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
