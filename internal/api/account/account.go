package account

import (
	dto "casino_simulator/internal/api/dto/account"
	"casino_simulator/internal/api/apierr"
	"casino_simulator/internal/converter"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"casino_simulator/internal/service"
	"casino_simulator/pkg/req"
	"casino_simulator/pkg/resp"
	"fmt"
	"net/http"
	"strconv"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, r, model.ErrUnauthenticated)
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	player, err := h.serv.Deposit(r.Context(), playerID, payload.Amount)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(player))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, r, model.ErrUnauthenticated)
		return
	}

	player, err := h.serv.Balance(r.Context(), playerID)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(player))
}

// History - последние матчи, ?limit= (по умолчанию 50, максимум 100)
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, r, model.ErrUnauthenticated)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		var err error
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			apierr.Write(w, r, fmt.Errorf("%w: limit %q", model.ErrInvalidInput, s))
			return
		}
	}

	matches, err := h.serv.History(r.Context(), playerID, limit)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(matches))
}
