// AngelaMos | 2026
// handler.go

package invoice

import (
	"errors"
	"net/http"
	"strconv"

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
	r.Route("/invoices", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.ListInvoices)
		r.Post("/{invoiceID}/pay", h.InitiatePayment)
	})
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	invoices, err := h.service.ListForClient(r.Context(), username)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToInvoiceListResponse(invoices))
}

func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.ParseInt(chi.URLParam(r, "invoiceID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid invoice id")
		return
	}

	username := middleware.GetUsername(r.Context())

	intent, err := h.service.InitiatePayment(r.Context(), invoiceID, username)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "invoice not found")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "only pending invoices can be paid")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, intent)
}
