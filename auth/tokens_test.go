package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Howling-Techie/be-nc-news/apperror"
	"github.com/Howling-Techie/be-nc-news/config"
)

func newTestTokenService(access, refresh time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{
		JWTSecret:            "test-secret-do-not-use",
		AccessTokenDuration:  access,
		RefreshTokenDuration: refresh,
	})
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	token, err := svc.Issue("butter_bridge", "jonny", TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", claims.Username)
	assert.Equal(t, "jonny", claims.Name)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenOmitsName(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	pair, err := svc.IssuePair("butter_bridge", "jonny")
	require.NoError(t, err)

	claims, err := svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", claims.Username)
	assert.Empty(t, claims.Name)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(time.Hour, 168*time.Hour)
	verifier := NewTokenService(config.AuthConfig{
		JWTSecret:            "a-different-secret",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	})

	token, err := issuer.Issue("butter_bridge", "jonny", TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token, TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	pair, err := svc.IssuePair("butter_bridge", "jonny")
	require.NoError(t, err)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))

	_, err = svc.Verify(pair.AccessToken, TokenTypeRefresh)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	token, err := svc.Issue("butter_bridge", "jonny", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token, TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))

	ae, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "Token has expired", ae.Message)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	_, err := svc.Verify("not.a.jwt", TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestRefreshReturnsOriginalWhenFarFromExpiry(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	token, err := svc.Issue("butter_bridge", "jonny", TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)
	assert.Equal(t, token, refreshed)
}

func TestRefreshReissuesNearExpiry(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	// Two minutes of validity left: inside the five-minute window.
	token, err := svc.Issue("butter_bridge", "jonny", TokenTypeAccess, 2*time.Minute)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, refreshed)

	claims, err := svc.Verify(refreshed, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", claims.Username)
	assert.Equal(t, "jonny", claims.Name)
}

func TestRefreshReissuesExpiredToken(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	// Already expired: signature checks out so the claims are reissued.
	token, err := svc.Issue("butter_bridge", "jonny", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, refreshed)

	claims, err := svc.Verify(refreshed, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", claims.Username)
}

func TestRefreshRejectsBadSignature(t *testing.T) {
	issuer := newTestTokenService(time.Hour, 168*time.Hour)
	other := NewTokenService(config.AuthConfig{
		JWTSecret:            "a-different-secret",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	})

	token, err := issuer.Issue("butter_bridge", "jonny", TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = other.Refresh(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestTokenService(time.Hour, 168*time.Hour)

	// alg=none tokens must never pass key selection.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username:  "butter_bridge",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token, TokenTypeAccess)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}
