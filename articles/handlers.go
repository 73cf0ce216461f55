package articles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/auth"
	"github.com/Howling-Techie/be-nc-news/votes"
)

// Handlers exposes articles over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates article Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the article endpoints. The vote route accepts both
// POST and PATCH; clients of different API generations use either.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/articles", h.handleList)
	r.Post("/articles", h.handleInsert)
	r.Get("/articles/{article_id}", h.handleGet)
	r.Patch("/articles/{article_id}", h.handlePatch)
	r.Post("/articles/{article_id}/vote", h.handleCastVote)
	r.Patch("/articles/{article_id}/vote", h.handleCastVote)
	r.Delete("/articles/{article_id}/vote", h.handleRetractVote)
}

// handleList godoc
// @Summary List articles
// @Description Lists articles with effective votes and comment counts, optionally filtered by topic and sorted.
// @Tags articles
// @Produce json
// @Param topic query string false "Filter by topic slug"
// @Param sort_by query string false "Sort column" Enums(article_id, title, topic, author, created_at, votes, comment_count)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} articles.ArticlesEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Invalid sort_by or order"
// @Failure 404 {object} apperror.ErrorResponse "Topic not found"
// @Router /api/articles [get]
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	query, err := ParseListQuery(
		r.URL.Query().Get("topic"),
		r.URL.Query().Get("sort_by"),
		r.URL.Query().Get("order"),
	)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	list, err := h.service.List(r.Context(), query)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, ArticlesEnvelope{Articles: list})
}

// handleGet godoc
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} articles.ArticleEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Invalid article_id datatype"
// @Failure 404 {object} apperror.ErrorResponse "Article not found"
// @Router /api/articles/{article_id} [get]
func (h *Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.Get(r.Context(), chi.URLParam(r, "article_id"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, ArticleEnvelope{Article: article})
}

// handleInsert godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param articleBody body articles.NewArticleRequest true "Article"
// @Success 201 {object} articles.ArticleEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing required properties in body"
// @Failure 404 {object} apperror.ErrorResponse "Author or topic not found"
// @Router /api/articles [post]
func (h *Handlers) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req NewArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	article, err := h.service.Insert(r.Context(), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, ArticleEnvelope{Article: article})
}

// handlePatch godoc
// @Summary Increment an article's base votes (legacy)
// @Description Applies inc_votes directly to the base counter. Absent or zero inc_votes is a 304 no-op.
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param patchBody body votes.IncVotesRequest true "Increment"
// @Success 200 {object} articles.ArticleEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Invalid inc_votes datatype"
// @Failure 404 {object} apperror.ErrorResponse "Article not found"
// @Router /api/articles/{article_id} [patch]
func (h *Handlers) handlePatch(w http.ResponseWriter, r *http.Request) {
	var req votes.IncVotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	article, err := h.service.PatchBaseVotes(r.Context(), chi.URLParam(r, "article_id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, ArticleEnvelope{Article: article})
}

// handleCastVote godoc
// @Summary Cast a vote on an article
// @Description Upserts the caller's vote for the article and returns the article with its recomputed score.
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param voteBody body votes.CastRequest true "Token and vote value"
// @Success 200 {object} articles.ArticleEnvelope
// @Failure 400 {object} apperror.ErrorResponse "Missing token, missing vote, or invalid datatype"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "Article not found"
// @Router /api/articles/{article_id}/vote [post]
func (h *Handlers) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req votes.CastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()

	article, err := h.service.CastVote(r.Context(), chi.URLParam(r, "article_id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, ArticleEnvelope{Article: article})
}

// handleRetractVote godoc
// @Summary Retract a vote on an article
// @Description Removes the caller's ledger entry for the article, if any.
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param tokenBody body auth.TokenRequest true "Access token"
// @Success 200 {object} articles.ArticleEnvelope
// @Failure 401 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "Article not found"
// @Router /api/articles/{article_id}/vote [delete]
func (h *Handlers) handleRetractVote(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
		return
	}
	defer r.Body.Close()
	if req.Token == "" {
		auth.WriteError(w, r, apperror.NewBadRequestError("Missing token", nil))
		return
	}

	article, err := h.service.RetractVote(r.Context(), chi.URLParam(r, "article_id"), req.Token)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, ArticleEnvelope{Article: article})
}
