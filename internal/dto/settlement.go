package dto

import (
	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/settlement"
)

// AmountDTO carries a balance. Found is false when no transaction
// contributed, Formatted is the two-decimal rendering.
type AmountDTO struct {
	Value     float64 `json:"value" example:"193"`
	Formatted string  `json:"formatted" example:"193.00"`
	Found     bool    `json:"found" example:"true"`
}

type KittyBalanceResponseDTO struct {
	EventID int       `json:"event_id"`
	Mode    string    `json:"mode" example:"gross"`
	Balance AmountDTO `json:"balance"`
}

type NetBalanceResponseDTO struct {
	EventID    int       `json:"event_id"`
	GiverID    int       `json:"giver_id"`
	ReceiverID int       `json:"receiver_id"`
	Balance    AmountDTO `json:"balance"`
}

type ParticipantCountResponseDTO struct {
	EventID int `json:"event_id"`
	Count   int `json:"count"`
}

type SummaryResponseDTO struct {
	EventID          int       `json:"event_id"`
	KittyBalance     AmountDTO `json:"kitty_balance"`
	KittyNetBalance  AmountDTO `json:"kitty_net_balance"`
	ParticipantCount int       `json:"participant_count"`
	TransactionCount int       `json:"transaction_count"`
}

func AmountFromDomain(a domain.Amount) AmountDTO {
	return AmountDTO{
		Value:     a.Value,
		Formatted: domain.FormatAmount(a.Value),
		Found:     a.Found,
	}
}

func SummaryFromDomain(s settlement.Summary) SummaryResponseDTO {
	return SummaryResponseDTO{
		EventID:          s.EventID,
		KittyBalance:     AmountFromDomain(s.KittyBalance),
		KittyNetBalance:  AmountFromDomain(s.KittyNetBalance),
		ParticipantCount: s.ParticipantCount,
		TransactionCount: s.TransactionCount,
	}
}

func SummariesFromDomain(summaries []settlement.Summary) []SummaryResponseDTO {
	out := make([]SummaryResponseDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, SummaryFromDomain(s))
	}
	return out
}
