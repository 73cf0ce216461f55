package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/db"
)

// Service implements registration, sign-in, current-user lookup and token
// refresh on top of the TokenService and the users table.
type Service struct {
	pool   *pgxpool.Pool
	tokens *TokenService
}

// NewService creates an auth Service.
func NewService(pool *pgxpool.Pool, tokens *TokenService) *Service {
	return &Service{pool: pool, tokens: tokens}
}

// Tokens exposes the underlying token service for collaborators that only
// need verification (the vote ledger).
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a new user and returns a token pair. Format validation
// runs first, then the duplicate check, then the write.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenPair, error) {
	if err := ValidateRegister(req); err != nil {
		return nil, err
	}

	exists, err := s.userExists(ctx, req.Username)
	if err != nil {
		return nil, db.TranslateError(err, "failed to check username")
	}
	if exists {
		return nil, apperror.NewConflictError("Username already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var avatar interface{}
	if req.AvatarURL != "" {
		avatar = req.AvatarURL
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (username, name, password, avatar_url) VALUES ($1, $2, $3, $4)`,
		req.Username, req.Name, string(hashed), avatar)
	if err != nil {
		// The pre-check races with concurrent registrations; the unique
		// constraint is the real arbiter.
		if db.IsUniqueViolation(err) {
			return nil, apperror.NewConflictError("Username already exists", nil)
		}
		return nil, db.TranslateError(err, "failed to create user")
	}

	return s.tokens.IssuePair(req.Username, req.Name)
}

// SignIn authenticates a user by password and returns the user with a fresh
// token pair. An unknown username is NotFound; a wrong password is an
// AuthError — the two are never conflated.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	if err := ValidateSignIn(req); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("Incorrect password", nil)
	}

	pair, err := s.tokens.IssuePair(user.Username, user.Name)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &SignInResponse{User: user, Token: pair}, nil
}

// CurrentUser resolves an access token to its user.
func (s *Service) CurrentUser(ctx context.Context, tokenString string) (*User, error) {
	claims, err := s.tokens.Verify(tokenString, TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is rotated only when it is close to expiry, via the
// token service's sliding refresh.
func (s *Service) Refresh(ctx context.Context, tokenString string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(tokenString, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	// The refresh token only carries the username; the display name for
	// the new access token comes from the users table. A credential for a
	// since-removed user is rejected rather than resurrected.
	user, err := s.getUser(ctx, claims.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("Invalid token", nil)
		}
		return nil, err
	}

	accessToken, err := s.tokens.Issue(user.Username, user.Name, TokenTypeAccess, s.tokens.accessDuration)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Refresh(tokenString)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) getUser(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.pool.QueryRow(ctx,
		`SELECT username, name, password, avatar_url FROM users WHERE username = $1`,
		username).Scan(&user.Username, &user.Name, &user.Password, &user.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, db.TranslateError(err, "failed to get user")
	}
	return &user, nil
}

func (s *Service) userExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}
