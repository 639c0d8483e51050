package auth

import (
	"casino_simulator/internal/api/apierr"
	dto "casino_simulator/internal/api/dto/auth"
	"casino_simulator/internal/converter"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"casino_simulator/internal/service"
	"casino_simulator/pkg/req"
	"casino_simulator/pkg/resp"
	"fmt"
	"net/http"
	"time"
)

type HandlerDeps struct {
	Serv        service.AuthService
	TokenMaxAge time.Duration
}

type Handler struct {
	serv        service.AuthService
	tokenMaxAge time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, tokenMaxAge: deps.TokenMaxAge}
}

// Login входит по имени и возвращает access_token в теле и в cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Name)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	setAccessTokenCookie(w, data.AccessToken, h.tokenMaxAge)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(data))
}

// Logout убирает поле сапёра и удаляет cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, r, model.ErrUnauthenticated)
		return
	}

	if err := h.serv.Logout(r.Context(), playerID); err != nil {
		apierr.Write(w, r, err)
		return
	}

	deleteAccessTokenCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// setAccessTokenCookie устанавливает cookie с access_token
func setAccessTokenCookie(w http.ResponseWriter, accessToken string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// deleteAccessTokenCookie удаляет cookie с access_token
func deleteAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
