package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/auth"
	"github.com/Howling-Techie/be-nc-news/votes"
)

// Handlers exposes comments over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates comment Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the comment endpoints, including the per-article
// listing and creation routes.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/articles/{article_id}/comments", h.handleListForArticle)
	r.Post("/articles/{article_id}/comments", h.handleInsertForArticle)
	r.Patch("/comments/{comment_id}", h.handlePatch)
	r.Delete("/comments/{comment_id}", h.handleDelete)
	r.Post("/comments/{comment_id}/vote", h.handleCastVote)
	r.Patch("/comments/{comment_id}/vote", h.handleCastVote)
	r.Delete("/comments/{comment_id}/vote", h.handleRetractVote)
}

// handleListForArticle godoc
// @Summary List an article's comments
// @Tags comments
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} comments.CommentsEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Invalid article_id datatype"
// @Failure 404 {object} apperror.ErrorResponse "Article not found"
// @Router /api/articles/{article_id}/comments [get]
func (h *Handlers) handleListForArticle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListForArticle(r.Context(), chi.URLParam(r, "article_id"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, CommentsEnvelope{Comments: list})
}

// handleInsertForArticle godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param commentBody body comments.NewCommentRequest true "Comment"
// @Success 201 {object} comments.CommentEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing body or author"
// @Failure 404 {object} apperror.ErrorResponse "Article or user not found"
// @Router /api/articles/{article_id}/comments [post]
func (h *Handlers) handleInsertForArticle(w http.ResponseWriter, r *http.Request) {
	var req NewCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	comment, err := h.service.InsertForArticle(r.Context(), chi.URLParam(r, "article_id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, CommentEnvelope{Comment: comment})
}

// handlePatch godoc
// @Summary Increment a comment's base votes (legacy)
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param patchBody body votes.IncVotesRequest true "Increment"
// @Success 200 {object} comments.CommentEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Invalid inc_votes datatype"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Router /api/comments/{comment_id} [patch]
func (h *Handlers) handlePatch(w http.ResponseWriter, r *http.Request) {
	var req votes.IncVotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	comment, err := h.service.PatchBaseVotes(r.Context(), chi.URLParam(r, "comment_id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, CommentEnvelope{Comment: comment})
}

// handleDelete godoc
// @Summary Delete a comment
// @Tags comments
// @Param comment_id path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 400 {object} apperror.ErrorResponse "Invalid comment_id datatype"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Router /api/comments/{comment_id} [delete]
func (h *Handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "comment_id")); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCastVote godoc
// @Summary Cast a vote on a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param voteBody body votes.CastRequest true "Token and vote value"
// @Success 200 {object} comments.CommentEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing token, missing vote, or invalid datatype"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Router /api/comments/{comment_id}/vote [patch]
func (h *Handlers) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req votes.CastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	comment, err := h.service.CastVote(r.Context(), chi.URLParam(r, "comment_id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, CommentEnvelope{Comment: comment})
}

// handleRetractVote godoc
// @Summary Retract a vote on a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param tokenBody body auth.TokenRequest true "Access token"
// @Success 200 {object} comments.CommentEnvelope
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Router /api/comments/{comment_id}/vote [delete]
func (h *Handlers) handleRetractVote(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	comment, err := h.service.RetractVote(r.Context(), chi.URLParam(r, "comment_id"), req.Token)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, CommentEnvelope{Comment: comment})
}
