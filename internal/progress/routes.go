package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coursegen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/update", h.Update)
	return r
}

// CourseRoutes registers progress resources nested under /courses.
func CourseRoutes(h *Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/{courseId}/progress", h.GetCourseProgress)
	}
}
