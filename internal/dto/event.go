package dto

import (
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
)

type EventRequestDTO struct {
	Name        string `json:"name" validate:"required" example:"Warsaw trip"`
	StartDate   string `json:"start_date" validate:"required" example:"2016-09-01"`
	EndDate     string `json:"end_date" validate:"required" example:"2016-09-04"`
	Place       string `json:"place" example:"Warsaw"`
	Description string `json:"description"`
}

type EventResponseDTO struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	AdminID     int       `json:"admin_id"`
	Place       string    `json:"place"`
	Description string    `json:"description"`
	Finished    bool      `json:"finished"`
	CreatedAt   time.Time `json:"created_at"`
}

type CountResponseDTO struct {
	Count int `json:"count"`
}

func EventFromDomain(e domain.Event) EventResponseDTO {
	return EventResponseDTO{
		ID:          e.ID,
		Name:        e.Name,
		StartDate:   e.StartDate.Format(dateLayout),
		EndDate:     e.EndDate.Format(dateLayout),
		AdminID:     e.AdminID,
		Place:       e.Place,
		Description: e.Description,
		Finished:    e.Finished,
		CreatedAt:   e.CreatedAt,
	}
}

func EventsFromDomain(events []domain.Event) []EventResponseDTO {
	out := make([]EventResponseDTO, 0, len(events))
	for _, e := range events {
		out = append(out, EventFromDomain(e))
	}
	return out
}
