package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trivia-quiz-service/internal/domain"
)

// Default expirations, overridable through config.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims carries the client-visible identity. The admin flag deliberately
// never appears here; admin checks go to storage.
type Claims struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	IsGuest bool   `json:"isGuest"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens handed to clients on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenManager mints and verifies HS256 access/refresh token pairs.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// GeneratePair creates both access and refresh tokens for a user.
func (m *TokenManager) GeneratePair(user domain.User) (TokenPair, error) {
	access, err := m.generate(user, m.accessSecret, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.generate(user, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidateAccess verifies an access token and returns its claims.
func (m *TokenManager) ValidateAccess(token string) (*Claims, error) {
	return m.validate(token, m.accessSecret)
}

// ValidateRefresh verifies a refresh token and returns its claims.
func (m *TokenManager) ValidateRefresh(token string) (*Claims, error) {
	return m.validate(token, m.refreshSecret)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (m *TokenManager) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := m.ValidateRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	return m.GeneratePair(domain.User{
		ID:      claims.UserID,
		Name:    claims.Name,
		Email:   claims.Email,
		IsGuest: claims.IsGuest,
	})
}

func (m *TokenManager) generate(user domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsGuest: user.IsGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *TokenManager) validate(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
