package auth

import (
	"net/http"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/transport"
	"github.com/frahmantamala/student-finance/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Verifier TokenVerifier
}

func NewHandler(baseHandler *transport.BaseHandler, verifier TokenVerifier) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Verifier:    verifier,
	}
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token subject as the owner of everything the request reads or writes.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Warn("auth middleware: missing authorization token", "path", r.URL.Path)
			h.HandleServiceError(w, internal.ErrMissingToken)
			return
		}

		claims, err := h.Verifier.Verify(token)
		if err != nil {
			h.Logger.Warn("auth middleware: token rejected", "error", err)
			h.HandleServiceError(w, err)
			return
		}

		ctx := internal.ContextWithOwnerID(r.Context(), claims.Subject)
		ctx = logger.With(ctx, "ownerID", claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
