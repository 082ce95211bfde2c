package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coursegen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.Get)
	return r
}
