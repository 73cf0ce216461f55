// Package users is the read-only user directory: listing users and looking
// one up by username. Registration and credentials live in package auth.
package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/auth"
	"github.com/Howling-Techie/be-nc-news/db"
)

// Service provides user directory reads.
type Service struct {
	pool *pgxpool.Pool
}

// NewService creates a users Service.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// List returns every user. Password hashes are never selected.
func (s *Service) List(ctx context.Context) ([]auth.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT username, name, avatar_url FROM users`)
	if err != nil {
		return nil, db.TranslateError(err, "failed to list users")
	}
	defer rows.Close()

	// Starts non-nil so an empty table renders as [] rather than null.
	list := []auth.User{}
	for rows.Next() {
		var user auth.User
		if err := rows.Scan(&user.Username, &user.Name, &user.AvatarURL); err != nil {
			return nil, db.TranslateError(err, "failed to scan user")
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError(err, "failed to read users")
	}
	return list, nil
}

// Get returns a single user by username.
func (s *Service) Get(ctx context.Context, username string) (*auth.User, error) {
	var user auth.User
	err := s.pool.QueryRow(ctx,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`,
		username).Scan(&user.Username, &user.Name, &user.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, db.TranslateError(err, "failed to get user")
	}
	return &user, nil
}
