package articles

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/auth"
	"github.com/Howling-Techie/be-nc-news/db"
	"github.com/Howling-Techie/be-nc-news/votes"
)

// articleSelect computes the effective score and comment count for every
// read. Scalar subqueries keep the ledger sum independent of the comment
// join cardinality.
const articleSelect = `
	SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at,
	       a.votes + COALESCE((SELECT SUM(av.votes) FROM article_votes av WHERE av.article_id = a.article_id), 0) AS votes,
	       a.article_img_url,
	       (SELECT COUNT(*) FROM comments c WHERE c.article_id = a.article_id) AS comment_count
	FROM articles a`

// Service provides article reads, creation, and both voting paths.
type Service struct {
	pool   *pgxpool.Pool
	tokens *auth.TokenService
}

// NewService creates an articles Service.
func NewService(pool *pgxpool.Pool, tokens *auth.TokenService) *Service {
	return &Service{pool: pool, tokens: tokens}
}

// List returns articles matching the validated query. Filtering by an
// unknown topic is a 404 rather than an empty list.
func (s *Service) List(ctx context.Context, query *ListQuery) ([]Article, error) {
	sql := articleSelect
	var args []any
	if query.Topic != "" {
		sql += ` WHERE a.topic = $1`
		args = append(args, query.Topic)
	}
	sql += " " + query.OrderClause()

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError(err, "failed to list articles")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Article])
	if err != nil {
		return nil, db.TranslateError(err, "failed to scan articles")
	}

	if len(list) == 0 && query.Topic != "" {
		exists, err := s.topicExists(ctx, query.Topic)
		if err != nil {
			return nil, db.TranslateError(err, "failed to check topic")
		}
		if !exists {
			return nil, apperror.NewNotFoundError("Topic not found", nil)
		}
	}
	return list, nil
}

// Get returns a single article with its recomputed score.
func (s *Service) Get(ctx context.Context, articleID string) (*Article, error) {
	id, err := parseArticleID(articleID)
	if err != nil {
		return nil, err
	}
	return getArticle(ctx, s.pool, id)
}

// Insert creates an article. The referenced author and topic must pre-exist.
func (s *Service) Insert(ctx context.Context, req NewArticleRequest) (*Article, error) {
	if req.Author == "" || req.Title == "" || req.Body == "" || req.Topic == "" {
		return nil, apperror.NewValidationError("Missing required properties in body", nil)
	}

	if exists, err := s.userExists(ctx, req.Author); err != nil {
		return nil, db.TranslateError(err, "failed to check author")
	} else if !exists {
		return nil, apperror.NewNotFoundError("User not found", nil)
	}
	if exists, err := s.topicExists(ctx, req.Topic); err != nil {
		return nil, db.TranslateError(err, "failed to check topic")
	} else if !exists {
		return nil, apperror.NewNotFoundError("Topic not found", nil)
	}

	// Omitting article_img_url lets the column default supply the
	// placeholder URL.
	var id int
	var insertErr error
	if req.ArticleImgURL != "" {
		insertErr = s.pool.QueryRow(ctx,
			`INSERT INTO articles (title, topic, author, body, article_img_url)
			 VALUES ($1, $2, $3, $4, $5) RETURNING article_id`,
			req.Title, req.Topic, req.Author, req.Body, req.ArticleImgURL).Scan(&id)
	} else {
		insertErr = s.pool.QueryRow(ctx,
			`INSERT INTO articles (title, topic, author, body)
			 VALUES ($1, $2, $3, $4) RETURNING article_id`,
			req.Title, req.Topic, req.Author, req.Body).Scan(&id)
	}
	if insertErr != nil {
		return nil, db.TranslateError(insertErr, "failed to create article")
	}

	return getArticle(ctx, s.pool, id)
}

// PatchBaseVotes is the legacy direct-increment path: inc_votes mutates the
// base counter, leaving ledger entries untouched. Absent or zero inc_votes
// is the documented 304 no-op.
func (s *Service) PatchBaseVotes(ctx context.Context, articleID string, req votes.IncVotesRequest) (*Article, error) {
	id, err := parseArticleID(articleID)
	if err != nil {
		return nil, err
	}
	inc, err := votes.ParseIncVotes(req.IncVotes)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Article, error) {
		tag, err := tx.Exec(ctx,
			`UPDATE articles SET votes = votes + $1 WHERE article_id = $2`, inc, id)
		if err != nil {
			return nil, db.TranslateError(err, "failed to update article votes")
		}
		if tag.RowsAffected() == 0 {
			return nil, apperror.NewNotFoundError("Article not found", nil)
		}
		return getArticle(ctx, tx, id)
	})
}

// CastVote upserts the caller's ledger entry for an article and returns the
// article with its recomputed score. Validation happens before any storage
// write; the upsert and recompute read share one transaction so the
// response always reflects the write.
func (s *Service) CastVote(ctx context.Context, articleID string, req votes.CastRequest) (*Article, error) {
	id, claims, err := s.authorizeVote(articleID, req.Token)
	if err != nil {
		return nil, err
	}
	value, err := votes.ParseVote(req.Vote)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Article, error) {
		if err := s.checkVoteSubject(ctx, tx, id, claims.Username); err != nil {
			return nil, err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO article_votes (article_id, username, votes)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (article_id, username) DO UPDATE SET votes = EXCLUDED.votes`,
			id, claims.Username, value)
		if err != nil {
			return nil, db.TranslateError(err, "failed to cast vote")
		}
		return getArticle(ctx, tx, id)
	})
}

// RetractVote removes the caller's ledger entry. Retracting a vote that was
// never cast is not an error; the recomputed article is returned either way.
func (s *Service) RetractVote(ctx context.Context, articleID string, token string) (*Article, error) {
	id, claims, err := s.authorizeVote(articleID, token)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Article, error) {
		if err := s.checkVoteSubject(ctx, tx, id, claims.Username); err != nil {
			return nil, err
		}
		_, err := tx.Exec(ctx,
			`DELETE FROM article_votes WHERE article_id = $1 AND username = $2`,
			id, claims.Username)
		if err != nil {
			return nil, db.TranslateError(err, "failed to retract vote")
		}
		return getArticle(ctx, tx, id)
	})
}

// authorizeVote runs the storage-free gates: id format and credential.
func (s *Service) authorizeVote(articleID, token string) (int, *auth.Claims, error) {
	id, err := parseArticleID(articleID)
	if err != nil {
		return 0, nil, err
	}
	if token == "" {
		return 0, nil, apperror.NewBadRequestError("Missing token", nil)
	}
	claims, err := s.tokens.Verify(token, auth.TokenTypeAccess)
	if err != nil {
		return 0, nil, err
	}
	return id, claims, nil
}

// checkVoteSubject gates a ledger write: the article must exist and the
// credential must still resolve to a stored user.
func (s *Service) checkVoteSubject(ctx context.Context, q db.Querier, id int, username string) error {
	var articleExists, userExists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1),
		        EXISTS (SELECT 1 FROM users WHERE username = $2)`,
		id, username).Scan(&articleExists, &userExists)
	if err != nil {
		return db.TranslateError(err, "failed to check vote subject")
	}
	if !articleExists {
		return apperror.NewNotFoundError("Article not found", nil)
	}
	if !userExists {
		return apperror.NewAuthError("Invalid token", nil)
	}
	return nil
}

func (s *Service) inTx(ctx context.Context, fn func(pgx.Tx) (*Article, error)) (*Article, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, db.TranslateError(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	article, err := fn(tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, db.TranslateError(err, "failed to commit transaction")
	}
	return article, nil
}

func getArticle(ctx context.Context, q db.Querier, id int) (*Article, error) {
	var a Article
	err := q.QueryRow(ctx, articleSelect+` WHERE a.article_id = $1`, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt,
		&a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Article not found", nil)
		}
		return nil, db.TranslateError(err, fmt.Sprintf("failed to get article %d", id))
	}
	return &a, nil
}

func parseArticleID(articleID string) (int, error) {
	id, err := strconv.Atoi(articleID)
	if err != nil || id < 1 {
		return 0, apperror.NewBadRequestError("Invalid article_id datatype", nil)
	}
	return id, nil
}

func (s *Service) userExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (s *Service) topicExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}
