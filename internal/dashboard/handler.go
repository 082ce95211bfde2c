package dashboard

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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
