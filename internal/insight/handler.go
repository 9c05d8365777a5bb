package insight

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetInsights(ctx context.Context, ownerID, tab string) (*InsightsView, error)
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

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetInsights(r.Context(), internal.OwnerIDFromContext(r.Context()), r.URL.Query().Get("tab"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}
