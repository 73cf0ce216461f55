package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

// Handlers exposes the auth service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates auth Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the auth endpoints on the router. The original API
// generation accepted GET with a JSON body on the token routes, so both
// methods are kept for compatibility.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/user/register", h.handleRegister)
	r.Get("/user/signin", h.handleSignIn)
	r.Post("/user/signin", h.handleSignIn)
	r.Get("/user", h.handleCurrentUser)
	r.Post("/user", h.handleCurrentUser)
	r.Get("/user/refresh", h.handleRefresh)
	r.Post("/user/refresh", h.handleRefresh)
}

// handleRegister godoc
// @Summary Register a new user
// @Description Creates a user and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.TokenEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Format violation or missing field"
// @Failure 403 {object} apperror.ErrorResponse "Username already exists"
// @Router /api/user/register [post]
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	pair, err := h.service.Register(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, TokenEnvelope{Token: pair})
}

// handleSignIn godoc
// @Summary Sign in
// @Description Authenticates a username/password pair and returns the user with fresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param signInBody body auth.SignInRequest true "Credentials"
// @Success 200 {object} auth.SignInResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Incorrect password"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /api/user/signin [post]
func (h *Handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	resp, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// handleCurrentUser godoc
// @Summary Get the current user
// @Description Resolves the access token in the request body to its user.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenBody body auth.TokenRequest true "Access token"
// @Success 200 {object} auth.UserEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing token"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Router /api/user [post]
func (h *Handlers) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	token, ok := decodeToken(w, r)
	if !ok {
		return
	}
	user, err := h.service.CurrentUser(r.Context(), token)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, UserEnvelope{User: user})
}

// handleRefresh godoc
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new access token, rotating the refresh token when it nears expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenBody body auth.TokenRequest true "Refresh token"
// @Success 200 {object} auth.TokenEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing token"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Router /api/user/refresh [post]
func (h *Handlers) handleRefresh(w http.ResponseWriter, r *http.Request) {
	token, ok := decodeToken(w, r)
	if !ok {
		return
	}
	pair, err := h.service.Refresh(r.Context(), token)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, TokenEnvelope{Token: pair})
}

// decodeToken reads the body-transported credential. A missing token is a
// 400, matching the documented contract; verification failures are 401 and
// raised later by the service.
func decodeToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return "", false
	}
	defer r.Body.Close()
	if req.Token == "" {
		WriteError(w, r, apperror.NewBadRequestError("Missing token", nil))
		return "", false
	}
	return req.Token, true
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"msg":"Internal Server Error"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError is the single boundary translator from error values to HTTP
// responses. Errors outside the apperror taxonomy become a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal Server Error", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("request failed")
	}

	// 304 carries no body.
	if status == http.StatusNotModified {
		w.WriteHeader(status)
		return
	}
	WriteJSON(w, status, appErr.ToResponse())
}
