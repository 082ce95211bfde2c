package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coursegen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/submit", h.Submit)
	return r
}

// CourseRoutes registers quiz resources nested under /courses.
func CourseRoutes(h *Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/{courseId}/chapters/{chapterId}/quiz", h.GenerateChapterQuiz)
		r.Get("/{courseId}/chapters/{chapterId}/quiz", h.GetChapterQuiz)
		r.Post("/{courseId}/final-quiz", h.GenerateFinalQuiz)
		r.Get("/{courseId}/final-quiz", h.GetFinalQuiz)
	}
}
