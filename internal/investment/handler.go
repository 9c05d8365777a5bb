package investment

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetPortfolio(ctx context.Context, ownerID string) *PortfolioView
	CreateInvestment(ctx context.Context, ownerID string, dto CreateInvestmentDTO) (*Holding, error)
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

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetPortfolio(r.Context(), internal.OwnerIDFromContext(r.Context())))
}

func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var dto CreateInvestmentDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	holding, err := h.Service.CreateInvestment(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, holding)
}
