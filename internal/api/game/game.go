package game

import (
	"casino_simulator/internal/api/apierr"
	dto "casino_simulator/internal/api/dto/game"
	"casino_simulator/internal/converter"
	"casino_simulator/internal/model"
	"casino_simulator/internal/service"
	"casino_simulator/pkg/req"
	"casino_simulator/pkg/resp"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play - POST /play/{game}
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToPlayRequest(chi.URLParam(r, "game"), payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(result))
}

// Stats - статистика заведения по играм
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
