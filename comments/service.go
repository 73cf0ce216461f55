package comments

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

const commentSelect = `
	SELECT c.comment_id, c.article_id, c.author, c.body,
	       c.votes + COALESCE((SELECT SUM(cv.votes) FROM comment_votes cv WHERE cv.comment_id = c.comment_id), 0) AS votes,
	       c.created_at
	FROM comments c`

// Service provides comment reads and mutations.
type Service struct {
	pool   *pgxpool.Pool
	tokens *auth.TokenService
}

// NewService creates a comments Service.
func NewService(pool *pgxpool.Pool, tokens *auth.TokenService) *Service {
	return &Service{pool: pool, tokens: tokens}
}

// ListForArticle returns an article's comments, newest first, each with its
// effective score.
func (s *Service) ListForArticle(ctx context.Context, articleID string) ([]Comment, error) {
	id, err := parseID(articleID, "article_id")
	if err != nil {
		return nil, err
	}

	if exists, err := s.articleExists(ctx, s.pool, id); err != nil {
		return nil, db.TranslateError(err, "failed to check article")
	} else if !exists {
		return nil, apperror.NewNotFoundError("Article not found", nil)
	}

	rows, err := s.pool.Query(ctx,
		commentSelect+` WHERE c.article_id = $1 ORDER BY c.created_at DESC`, id)
	if err != nil {
		return nil, db.TranslateError(err, "failed to list comments")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Comment])
	if err != nil {
		return nil, db.TranslateError(err, "failed to scan comments")
	}
	return list, nil
}

// InsertForArticle creates a comment on an article. The author resolves
// from the access token when present, else from the username field, which
// must reference an existing user.
func (s *Service) InsertForArticle(ctx context.Context, articleID string, req NewCommentRequest) (*Comment, error) {
	id, err := parseID(articleID, "article_id")
	if err != nil {
		return nil, err
	}
	if req.Body == "" {
		return nil, apperror.NewValidationError("Missing required properties in body", nil)
	}

	author, err := s.resolveAuthor(ctx, req)
	if err != nil {
		return nil, err
	}

	if exists, err := s.articleExists(ctx, s.pool, id); err != nil {
		return nil, db.TranslateError(err, "failed to check article")
	} else if !exists {
		return nil, apperror.NewNotFoundError("Article not found", nil)
	}

	var comment Comment
	err = s.pool.QueryRow(ctx,
		`INSERT INTO comments (article_id, author, body)
		 VALUES ($1, $2, $3)
		 RETURNING comment_id, article_id, author, body, votes, created_at`,
		id, author, req.Body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author,
		&comment.Body, &comment.Votes, &comment.CreatedAt)
	if err != nil {
		return nil, db.TranslateError(err, "failed to create comment")
	}
	return &comment, nil
}

func (s *Service) resolveAuthor(ctx context.Context, req NewCommentRequest) (string, error) {
	if req.Token != "" {
		claims, err := s.tokens.Verify(req.Token, auth.TokenTypeAccess)
		if err != nil {
			return "", err
		}
		return claims.Username, nil
	}
	if req.Username == "" {
		return "", apperror.NewValidationError("Missing required properties in body", nil)
	}
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, req.Username).Scan(&exists)
	if err != nil {
		return "", db.TranslateError(err, "failed to check user")
	}
	if !exists {
		return "", apperror.NewNotFoundError("User not found", nil)
	}
	return req.Username, nil
}

// PatchBaseVotes is the legacy direct-increment path for comments.
func (s *Service) PatchBaseVotes(ctx context.Context, commentID string, req votes.IncVotesRequest) (*Comment, error) {
	id, err := parseID(commentID, "comment_id")
	if err != nil {
		return nil, err
	}
	inc, err := votes.ParseIncVotes(req.IncVotes)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Comment, error) {
		tag, err := tx.Exec(ctx,
			`UPDATE comments SET votes = votes + $1 WHERE comment_id = $2`, inc, id)
		if err != nil {
			return nil, db.TranslateError(err, "failed to update comment votes")
		}
		if tag.RowsAffected() == 0 {
			return nil, apperror.NewNotFoundError("Comment not found", nil)
		}
		return getComment(ctx, tx, id)
	})
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, commentID string) error {
	id, err := parseID(commentID, "comment_id")
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return db.TranslateError(err, "failed to delete comment")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Comment not found", nil)
	}
	return nil
}

// CastVote upserts the caller's ledger entry for a comment and returns the
// comment with its recomputed score, mirroring the article path.
func (s *Service) CastVote(ctx context.Context, commentID string, req votes.CastRequest) (*Comment, error) {
	id, claims, err := s.authorizeVote(commentID, req.Token)
	if err != nil {
		return nil, err
	}
	value, err := votes.ParseVote(req.Vote)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Comment, error) {
		if err := s.checkVoteSubject(ctx, tx, id, claims.Username); err != nil {
			return nil, err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO comment_votes (comment_id, username, votes)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (comment_id, username) DO UPDATE SET votes = EXCLUDED.votes`,
			id, claims.Username, value)
		if err != nil {
			return nil, db.TranslateError(err, "failed to cast vote")
		}
		return getComment(ctx, tx, id)
	})
}

// RetractVote removes the caller's ledger entry for a comment.
func (s *Service) RetractVote(ctx context.Context, commentID string, token string) (*Comment, error) {
	id, claims, err := s.authorizeVote(commentID, token)
	if err != nil {
		return nil, err
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*Comment, error) {
		if err := s.checkVoteSubject(ctx, tx, id, claims.Username); err != nil {
			return nil, err
		}
		_, err := tx.Exec(ctx,
			`DELETE FROM comment_votes WHERE comment_id = $1 AND username = $2`,
			id, claims.Username)
		if err != nil {
			return nil, db.TranslateError(err, "failed to retract vote")
		}
		return getComment(ctx, tx, id)
	})
}

func (s *Service) authorizeVote(commentID, token string) (int, *auth.Claims, error) {
	id, err := parseID(commentID, "comment_id")
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

func (s *Service) checkVoteSubject(ctx context.Context, q db.Querier, id int, username string) error {
	var commentExists, userExists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = $1),
		        EXISTS (SELECT 1 FROM users WHERE username = $2)`,
		id, username).Scan(&commentExists, &userExists)
	if err != nil {
		return db.TranslateError(err, "failed to check vote subject")
	}
	if !commentExists {
		return apperror.NewNotFoundError("Comment not found", nil)
	}
	if !userExists {
		return apperror.NewAuthError("Invalid token", nil)
	}
	return nil
}

func (s *Service) inTx(ctx context.Context, fn func(pgx.Tx) (*Comment, error)) (*Comment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, db.TranslateError(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	comment, err := fn(tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, db.TranslateError(err, "failed to commit transaction")
	}
	return comment, nil
}

func getComment(ctx context.Context, q db.Querier, id int) (*Comment, error) {
	var c Comment
	err := q.QueryRow(ctx, commentSelect+` WHERE c.comment_id = $1`, id).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Comment not found", nil)
		}
		return nil, db.TranslateError(err, fmt.Sprintf("failed to get comment %d", id))
	}
	return &c, nil
}

func (s *Service) articleExists(ctx context.Context, q db.Querier, id int) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, id).Scan(&exists)
	return exists, err
}

func parseID(value, field string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id < 1 {
		return 0, apperror.NewBadRequestError(fmt.Sprintf("Invalid %s datatype", field), nil)
	}
	return id, nil
}
