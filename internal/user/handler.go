package user

import (
	"net/http"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
)

type Handler struct {
	service       UserService
	secureCookies bool
}

func NewHandler(s UserService, secureCookies bool) *Handler {
	return &Handler{service: s, secureCookies: secureCookies}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	auth.SetTokenCookie(w, resp.AccessToken, h.secureCookies)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WriteError(w, r, err)
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	auth.SetTokenCookie(w, resp.AccessToken, h.secureCookies)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
