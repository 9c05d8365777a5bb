package gig

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetGigs(ctx context.Context, gigType, search string) (*GigsView, error)
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

func (h *Handler) GetGigs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := h.Service.GetGigs(r.Context(), q.Get("type"), q.Get("q"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}
