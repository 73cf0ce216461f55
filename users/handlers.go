package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Howling-Techie/be-nc-news/auth"
)

// Handlers exposes the user directory over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates user Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the user directory endpoints.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.handleList)
	r.Get("/users/{username}", h.handleGet)
}

// UsersEnvelope wraps a user list response.
type UsersEnvelope struct {
	Users []auth.User `json:"users"`
}

// handleList godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} users.UsersEnvelope
// @Router /api/users [get]
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, UsersEnvelope{Users: list})
}

// handleGet godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} auth.UserEnvelope
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /api/users/{username} [get]
func (h *Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, auth.UserEnvelope{User: user})
}
