package quiz

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func chapterParams(r *http.Request) (userID, courseID, chapterID uuid.UUID, err error) {
	if userID, err = auth.UserIDFromContext(r.Context()); err != nil {
		return
	}
	if courseID, err = config.UUIDParam(r, "courseId", course.ErrCourseNotFound); err != nil {
		return
	}
	chapterID, err = config.UUIDParam(r, "chapterId", course.ErrChapterNotFound)
	return
}

func courseParams(r *http.Request) (userID, courseID uuid.UUID, err error) {
	if userID, err = auth.UserIDFromContext(r.Context()); err != nil {
		return
	}
	courseID, err = config.UUIDParam(r, "courseId", course.ErrCourseNotFound)
	return
}

func (h *Handler) GenerateChapterQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, chapterID, err := chapterParams(r)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	q, err := h.service.GenerateChapterQuiz(r.Context(), userID, courseID, chapterID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) GetChapterQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, chapterID, err := chapterParams(r)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	q, err := h.service.GetChapterQuiz(r.Context(), userID, courseID, chapterID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) GenerateFinalQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, err := courseParams(r)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	q, err := h.service.GenerateFinalQuiz(r.Context(), userID, courseID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) GetFinalQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, err := courseParams(r)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	q, err := h.service.GetFinalQuiz(r.Context(), userID, courseID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	var dto SubmitQuizDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
