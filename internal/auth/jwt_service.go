package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 7 * 24 * time.Hour
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 30 * 24 * time.Hour
	// ExpiresIn is the access token lifetime as reported to clients.
	ExpiresIn = "7d"
)

var (
	// ErrMissingSecret is returned when the signing secret is not configured.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	// ErrTokenExpired classifies a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid classifies a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the owning user's identifier alongside the registered
// expiry claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited tokens bound to a
// user identifier. Tokens are never persisted; verification relies on
// signature and expiry alone.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service. An empty secret is a fatal
// configuration error and is refused here so the process fails at startup.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// IssueTokenPair signs a 7-day access token and a 30-day refresh token for
// the user.
func (s *TokenService) IssueTokenPair(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.sign(userID, AccessTokenExpiry, "")
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.sign(userID, RefreshTokenExpiry, uuid.NewString())
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// IssueAccessToken signs a new access token only.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return s.sign(userID, AccessTokenExpiry, "")
}

func (s *TokenService) sign(userID string, expiry time.Duration, tokenID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and returns the bound user identifier. Expired
// tokens are classified as ErrTokenExpired, every other fault as
// ErrTokenInvalid.
func (s *TokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
