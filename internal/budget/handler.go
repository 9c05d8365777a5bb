package budget

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type ServiceAPI interface {
	GetOverview(ctx context.Context, ownerID, filter string) (*Overview, error)
	GetCategories(ctx context.Context, ownerID string) *CategoriesView
	UpdateCategory(ctx context.Context, ownerID, categoryID string, dto UpdateCategoryDTO) (*CategoryLine, error)
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

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetOverview(r.Context(), internal.OwnerIDFromContext(r.Context()), r.URL.Query().Get("category"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetCategories(r.Context(), internal.OwnerIDFromContext(r.Context())))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	var dto UpdateCategoryDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	line, err := h.Service.UpdateCategory(r.Context(), internal.OwnerIDFromContext(r.Context()), categoryID, dto)
	if err != nil {
		h.Logger.Warn("UpdateCategory: failed", "category_id", categoryID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}
