package progress

import (
	"net/http"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	var dto UpdateProgressDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	p, err := h.service.Update(r.Context(), userID, dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	courseID, err := config.UUIDParam(r, "courseId", course.ErrCourseNotFound)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	p, err := h.service.Get(r.Context(), userID, courseID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, p)
}
