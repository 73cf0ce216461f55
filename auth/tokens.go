// Package auth implements authentication for the API: the token service
// that issues, verifies and refreshes signed credentials, registration and
// sign-in, and the format validators gating both.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/config"
)

const (
	// TokenTypeAccess marks short-lived tokens that prove identity for a
	// single session. They embed both username and display name.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks longer-lived tokens used only to mint new
	// access tokens. They embed the username alone.
	TokenTypeRefresh = "refresh"

	// refreshWindow is how close to expiry a token must be before the
	// sliding Refresh reissues it.
	refreshWindow = 5 * time.Minute
)

// Claims is the JWT payload for both token types.
type Claims struct {
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the credential pair issued on registration and sign-in.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies signed, time-limited credentials. It is
// stateless: a token is trusted purely on its signature and claims.
type TokenService struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret:          []byte(cfg.JWTSecret),
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
	}
}

// Issue produces a signed token of the given type expiring after duration.
func (s *TokenService) Issue(username, name, tokenType string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   username,
		},
	}
	if tokenType == TokenTypeAccess {
		claims.Name = name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssuePair mints an access/refresh token pair for a user.
func (s *TokenService) IssuePair(username, name string) (*TokenPair, error) {
	accessToken, err := s.Issue(username, name, TokenTypeAccess, s.accessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.Issue(username, "", TokenTypeRefresh, s.refreshDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}

// Verify parses a token and checks its signature, expiry and type. Any
// failure is an AuthError so the boundary answers 401.
func (s *TokenService) Verify(tokenString, expectedType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewAuthError("Token has expired", err)
		}
		return nil, apperror.NewAuthError("Invalid token", err)
	}
	if !token.Valid {
		return nil, apperror.NewAuthError("Invalid token", nil)
	}
	if claims.TokenType != expectedType {
		return nil, apperror.NewAuthError(
			fmt.Sprintf("Invalid token type: expected %s", expectedType), nil)
	}
	return claims, nil
}

// Refresh implements sliding expiry. The signature must check out, but the
// expiry window is deliberately not enforced here: if less than five minutes
// of validity remain, a fresh token with the same claims is issued for the
// access duration; otherwise the original token is returned unchanged. This
// is an optimization, not a security boundary — callers must still Verify
// before trusting claims.
func (s *TokenService) Refresh(tokenString string) (string, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(tokenString, claims, s.keyFunc)
	if err != nil || !token.Valid {
		return "", apperror.NewAuthError("Invalid token", err)
	}
	if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) >= refreshWindow {
		return tokenString, nil
	}
	return s.Issue(claims.Username, claims.Name, claims.TokenType, s.accessDuration)
}
