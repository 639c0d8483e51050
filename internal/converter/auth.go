package converter

import (
	dto "casino_simulator/internal/api/dto/auth"
	"casino_simulator/internal/model"
)

func ToLoginResponse(data *model.AuthData) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: data.AccessToken,
		Player:      ToPlayerResponse(data.Player),
		FirstTime:   data.FirstTime,
	}
}

func ToPlayerResponse(p *model.Player) dto.PlayerResponse {
	return dto.PlayerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Balance:        money(p.Balance),
		InitialDeposit: money(p.InitialDeposit),
	}
}
