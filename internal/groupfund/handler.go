package groupfund

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetFunds(ctx context.Context, ownerID string) *FundsView
	CreateFund(ctx context.Context, ownerID string, dto CreateFundDTO) (*FundLine, error)
	Contribute(ctx context.Context, ownerID, fundID string, dto ContributeDTO) (*FundLine, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetFunds(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetFunds(r.Context(), internal.OwnerIDFromContext(r.Context())))
}

func (h *Handler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var dto CreateFundDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.CreateFund(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, line)
}

func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "id")

	var dto ContributeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.Contribute(r.Context(), internal.OwnerIDFromContext(r.Context()), fundID, dto)
	if err != nil {
		h.Logger.Warn("Contribute: failed", "fund_id", fundID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}
