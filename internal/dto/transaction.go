package dto

import "github.com/GlebRadaev/cheapy/internal/domain"

type TransactionRequestDTO struct {
	GiverID     int     `json:"giver_id" validate:"required" example:"2"`
	ReceiverID  int     `json:"receiver_id" validate:"required" example:"1"`
	EventID     int     `json:"event_id" validate:"required" example:"10"`
	Amount      float64 `json:"amount" validate:"required,gt=0" example:"30"`
	Date        string  `json:"date" validate:"required" example:"2016-09-01"`
	Place       string  `json:"place" example:"Warsaw"`
	Description string  `json:"description" example:"Supermarket"`
}

type TransactionResponseDTO struct {
	ID          int     `json:"id"`
	GiverID     int     `json:"giver_id"`
	ReceiverID  int     `json:"receiver_id"`
	EventID     int     `json:"event_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Place       string  `json:"place"`
	Description string  `json:"description"`
}

func TransactionFromDomain(t domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		GiverID:     t.GiverID,
		ReceiverID:  t.ReceiverID,
		EventID:     t.EventID,
		Amount:      t.Amount,
		Date:        t.Date.Format(dateLayout),
		Place:       t.Place,
		Description: t.Description,
	}
}

func TransactionsFromDomain(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, TransactionFromDomain(t))
	}
	return out
}
