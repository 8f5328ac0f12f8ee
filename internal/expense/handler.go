// AngelaMos | 2026
// handler.go

package expense

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.With(authenticator).Get("/expenses", h.ListExpenses)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	expenses, err := h.service.ListForClient(r.Context(), username)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToExpenseListResponse(expenses))
}
