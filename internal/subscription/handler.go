package subscription

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetSubscriptions(ctx context.Context, ownerID string) *SubscriptionsView
	CreateSubscription(ctx context.Context, ownerID string, dto CreateSubscriptionDTO) (*SubscriptionLine, error)
	UpdateSubscription(ctx context.Context, ownerID, subscriptionID string, dto UpdateSubscriptionDTO) (*SubscriptionLine, error)
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

func (h *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetSubscriptions(r.Context(), internal.OwnerIDFromContext(r.Context())))
}

func (h *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var dto CreateSubscriptionDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.CreateSubscription(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, line)
}

func (h *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateSubscriptionDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.UpdateSubscription(r.Context(), internal.OwnerIDFromContext(r.Context()), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, line)
}
