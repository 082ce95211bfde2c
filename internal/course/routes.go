package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coursegen/internal/auth"
)

// Routes serves /courses. Other packages add their nested course resources through nested.
func Routes(h *Handler, nested ...func(r chi.Router)) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/generate", h.Generate)
	r.Get("/", h.List)
	r.Get("/{courseId}", h.Get)
	r.Post("/{courseId}/subtopics/{subtopicId}/content", h.GenerateSubtopicContent)

	for _, register := range nested {
		register(r)
	}
	return r
}
