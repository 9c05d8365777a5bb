package loan

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetLoans(ctx context.Context, ownerID, direction string) (*LoansView, error)
	CreateLoan(ctx context.Context, ownerID string, dto CreateLoanDTO) (*LoanLine, error)
	UpdateStatus(ctx context.Context, ownerID, loanID string, dto UpdateStatusDTO) (*LoanLine, error)
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

func (h *Handler) GetLoans(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetLoans(r.Context(), internal.OwnerIDFromContext(r.Context()), r.URL.Query().Get("direction"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var dto CreateLoanDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.CreateLoan(r.Context(), internal.OwnerIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, line)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")

	var dto UpdateStatusDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.UpdateStatus(r.Context(), internal.OwnerIDFromContext(r.Context()), loanID, dto)
	if err != nil {
		h.Logger.Warn("UpdateStatus: failed", "loan_id", loanID, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, line)
}
