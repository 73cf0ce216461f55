package topics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/auth"
)

// Handlers exposes topics over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates topic Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the topic endpoints.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/topics", h.handleList)
	r.Post("/topics", h.handleInsert)
}

// handleList godoc
// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {object} topics.TopicsEnvelope
// @Router /api/topics [get]
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, TopicsEnvelope{Topics: list})
}

// handleInsert godoc
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param topicBody body topics.NewTopicRequest true "Topic"
// @Success 201 {object} topics.TopicEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing slug or description"
// @Failure 403 {object} apperror.ErrorResponse "Topic already exists"
// @Router /api/topics [post]
func (h *Handlers) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req NewTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	topic, err := h.service.Insert(r.Context(), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, TopicEnvelope{Topic: topic})
}
