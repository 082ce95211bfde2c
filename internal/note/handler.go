package note

import (
	"net/http"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	var dto CreateNoteDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	response, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	courseID, err := config.UUIDQuery(r, "course_id")
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	responses, err := h.service.List(r.Context(), userID, courseID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}
