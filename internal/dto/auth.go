package dto

type RegisterRequestDTO struct {
	Name      string `json:"name" example:"Bruno"`
	Nickname  string `json:"nickname" validate:"required,max=50" example:"bruno"`
	Email     string `json:"email" validate:"required,email" example:"bruno@example.com"`
	Password  string `json:"password" validate:"required" example:"secret"`
	Birthdate string `json:"birthdate" example:"1990-05-01"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type LoginRequestDTO struct {
	Nickname string `json:"nickname" validate:"required" example:"bruno"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

// PasswordRequestDTO confirms a destructive request.
type PasswordRequestDTO struct {
	Password string `json:"password" validate:"required"`
}
