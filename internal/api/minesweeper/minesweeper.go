package minesweeper

import (
	"casino_simulator/internal/api/apierr"
	dto "casino_simulator/internal/api/dto/minesweeper"
	"casino_simulator/internal/converter"
	"casino_simulator/internal/model"
	"casino_simulator/internal/service"
	"casino_simulator/pkg/req"
	"casino_simulator/pkg/resp"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.MinesweeperService
}

type Handler struct {
	serv service.MinesweeperService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	view, err := h.serv.Start(r.Context(), payload.Bet)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(view))
}

// Click - POST /minesweeper/click/{row}/{col}
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: row %q", model.ErrInvalidInput, chi.URLParam(r, "row")))
		return
	}
	col, err := strconv.Atoi(chi.URLParam(r, "col"))
	if err != nil {
		apierr.Write(w, r, fmt.Errorf("%w: col %q", model.ErrInvalidInput, chi.URLParam(r, "col")))
		return
	}

	result, err := h.serv.Reveal(r.Context(), row, col)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRevealResponse(result))
}

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Board(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(view))
}
