package offer

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetOffers(ctx context.Context, category string) (*OffersView, error)
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

func (h *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetOffers(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}
