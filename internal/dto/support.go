package dto

import "time"

type TicketRequestDTO struct {
	Name        string `json:"name"`
	Query       string `json:"query"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type TicketResponseDTO struct {
	TicketID    string    `json:"ticketId"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Reply       string    `json:"reply"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

type TicketReplyRequestDTO struct {
	Reply  string `json:"reply" validate:"required"`
	Status string `json:"status"`
}
