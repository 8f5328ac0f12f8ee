// AngelaMos | 2026
// handler.go

package document

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/client-portal/internal/core"
)

const maxUploadMemory = 8 << 20

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
	r.Route("/documents", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.ListDocuments)
		r.Post("/", h.UploadDocument)
		r.Get("/{documentID}", h.DownloadDocument)
	})
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.List(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}

	core.OK(w, ToFileListResponse(files))
}

func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		core.BadRequest(w, "expected multipart form with a file field")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		core.BadRequest(w, "missing file field")
		return
	}
	defer part.Close()

	if header.Filename == "" {
		core.BadRequest(w, "uploaded file must have a name")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	file, err := h.service.Upload(r.Context(), header.Filename, mimeType, part)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	core.Created(w, file)
}

func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	if documentID == "" {
		core.BadRequest(w, "missing document id")
		return
	}

	file, data, err := h.service.Download(r.Context(), documentID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", file.Name),
	)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response
	_, _ = w.Write(data)
}

func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrServiceUnavailable):
		// Mid-session credential rejections carry the bare sentinel,
		// not an AppError, so rebuild the 503 here.
		if appErr, ok := core.AsAppError(err); ok {
			core.JSONError(w, appErr)
			return
		}
		core.ServiceUnavailable(w, "document storage unavailable")
	case errors.Is(err, core.ErrUploadFailed):
		if appErr, ok := core.AsAppError(err); ok {
			core.JSONError(w, appErr)
			return
		}
		core.JSONError(w, core.UploadFailedError(""))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "document not found")
	default:
		core.InternalServerError(w, err)
	}
}
