package topics

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/db"
)

// Service provides topic reads and creation.
type Service struct {
	pool *pgxpool.Pool
}

// NewService creates a topics Service.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// List returns every topic.
func (s *Service) List(ctx context.Context) ([]Topic, error) {
	rows, err := s.pool.Query(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, db.TranslateError(err, "failed to list topics")
	}
	topics, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Topic])
	if err != nil {
		return nil, db.TranslateError(err, "failed to scan topics")
	}
	return topics, nil
}

// Insert creates a topic. A duplicate slug is a conflict, reported as 403.
func (s *Service) Insert(ctx context.Context, req NewTopicRequest) (*Topic, error) {
	if req.Slug == "" || req.Description == "" {
		return nil, apperror.NewValidationError("Missing required properties in body", nil)
	}

	exists, err := s.Exists(ctx, req.Slug)
	if err != nil {
		return nil, db.TranslateError(err, "failed to check topic")
	}
	if exists {
		return nil, apperror.NewConflictError("Topic already exists", nil)
	}

	var topic Topic
	err = s.pool.QueryRow(ctx,
		`INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description`,
		req.Slug, req.Description).Scan(&topic.Slug, &topic.Description)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperror.NewConflictError("Topic already exists", nil)
		}
		return nil, db.TranslateError(err, "failed to create topic")
	}
	return &topic, nil
}

// Exists reports whether a topic with the given slug exists. Strict
// equality only; slugs are identity columns.
func (s *Service) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}
