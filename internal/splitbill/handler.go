package splitbill

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetBills(ctx context.Context, ownerID string) *BillsView
	CreateBill(ctx context.Context, ownerID string, dto CreateBillDTO) (*BillLine, error)
	Settle(ctx context.Context, ownerID, billID string) (*BillLine, error)
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

func (h *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetBills(r.Context(), internal.OwnerIDFromContext(r.Context())))
}

func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var dto CreateBillDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.CreateBill(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, line)
}

func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "id")

	line, err := h.Service.Settle(r.Context(), internal.OwnerIDFromContext(r.Context()), billID)
	if err != nil {
		h.Logger.Warn("Settle: failed", "bill_id", billID, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, line)
}
