package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coursegen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}
