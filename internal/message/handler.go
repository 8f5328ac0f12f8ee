// AngelaMos | 2026
// handler.go

package message

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/projects/{projectID}/messages", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.ListMessages)
		r.Post("/", h.PostMessage)
	})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseProjectID(r)
	if err != nil {
		core.BadRequest(w, "invalid project id")
		return
	}

	username := middleware.GetUsername(r.Context())

	messages, err := h.service.ListForProject(r.Context(), projectID, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToMessageListResponse(messages))
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseProjectID(r)
	if err != nil {
		core.BadRequest(w, "invalid project id")
		return
	}

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	username := middleware.GetUsername(r.Context())

	msg, err := h.service.Post(r.Context(), projectID, username, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.Created(w, ToMessageResponse(msg))
}

func parseProjectID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "project not found")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "project belongs to another client")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "message content must not be empty")
	default:
		core.InternalServerError(w, err)
	}
}
