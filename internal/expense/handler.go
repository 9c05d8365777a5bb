package expense

import (
	"context"
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetExpenses(ctx context.Context, ownerID, filter string) (*ListView, error)
	CreateExpense(ctx context.Context, ownerID string, dto CreateExpenseDTO) (*Expense, error)
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

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.OwnerIDFromContext(r.Context())

	view, err := h.Service.GetExpenses(r.Context(), ownerID, r.URL.Query().Get("category"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ownerID := internal.OwnerIDFromContext(r.Context())

	var dto CreateExpenseDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Warn("CreateExpense: invalid body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	created, err := h.Service.CreateExpense(r.Context(), ownerID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}
