package dto

import "github.com/GlebRadaev/cheapy/internal/domain"

const dateLayout = "2006-01-02"

type UserResponseDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
	IsKitty   bool   `json:"is_kitty,omitempty"`
}

func UserFromDomain(u domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Birthdate: u.Birthdate.Format(dateLayout),
		IsKitty:   u.IsKitty,
	}
}

func UsersFromDomain(users []domain.User) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromDomain(u))
	}
	return out
}
