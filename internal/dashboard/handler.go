package dashboard

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetDashboard(ctx context.Context, ownerID string) (*DashboardView, error)
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

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetDashboard(r.Context(), internal.OwnerIDFromContext(r.Context()))
	if err != nil {
		h.Logger.Warn("GetDashboard: failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}
