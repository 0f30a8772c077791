package dto

type SignupRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
}

type UserResponseDTO struct {
	ID       int    `json:"id" example:"2"`
	Username string `json:"username" example:"alice"`
	Balance  int    `json:"balance" example:"93"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
}
