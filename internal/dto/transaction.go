package dto

import "time"

type CreateTransactionRequestDTO struct {
	Amount    int    `json:"amount" example:"100"`
	UTRNumber string `json:"utrNumber" example:"UTR123"`
}

type ResolveTransactionRequestDTO struct {
	Status string `json:"status" example:"approved"`
}

type TransactionResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"userId" example:"2"`
	Amount    int       `json:"amount" example:"100"`
	UTRNumber string    `json:"utrNumber" example:"UTR123"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"createdAt" example:"2020-12-09T16:09:57+03:00"`
}
