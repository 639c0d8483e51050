package auth

type LoginRequest struct {
	Name string `json:"name"` // Имя игрока, 1..64 символа
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Player      PlayerResponse `json:"player"`
	FirstTime   bool           `json:"first_time"` // Игрок ещё не пополнял счёт
}

type PlayerResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Balance        string `json:"balance"`
	InitialDeposit string `json:"initial_deposit"`
}
