package payment

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetPayments(ctx context.Context, ownerID, search string) *PaymentsView
	CreateContact(ctx context.Context, ownerID string, dto CreateContactDTO) (*Contact, error)
	SendMoney(ctx context.Context, ownerID string, dto SendMoneyDTO) (*TransactionLine, error)
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

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	h.WriteJSON(w, http.StatusOK, h.Service.GetPayments(r.Context(), internal.OwnerIDFromContext(r.Context()), search))
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var dto CreateContactDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	contact, err := h.Service.CreateContact(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, contact)
}

func (h *Handler) SendMoney(w http.ResponseWriter, r *http.Request) {
	var dto SendMoneyDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.SendMoney(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.Logger.Warn("SendMoney: failed", "contact_id", dto.ContactID, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, line)
}
