package course

import (
	"net/http"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	var dto GenerateCourseDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	c, err := h.service.Generate(r.Context(), userID, dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	courses, err := h.service.List(r.Context(), userID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	courseID, err := config.UUIDParam(r, "courseId", ErrCourseNotFound)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	c, err := h.service.Get(r.Context(), userID, courseID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) GenerateSubtopicContent(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	courseID, err := config.UUIDParam(r, "courseId", ErrCourseNotFound)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}
	subtopicID, err := config.UUIDParam(r, "subtopicId", ErrSubtopicNotFound)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	resp, err := h.service.GenerateSubtopicContent(r.Context(), userID, courseID, subtopicID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
