package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agrilink-backend/internal/models"
)

// AuthService issues and validates JWT tokens for the demo accounts. Tokens
// identify the caller; the store itself performs no ownership checks.
type AuthService struct {
	jwtSecret     string
	jwtExpiration time.Duration
	// In-memory blacklist for logged-out tokens, cleared lazily as entries
	// expire.
	blacklistedTokens map[string]time.Time
	blacklistMutex    sync.RWMutex
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, jwtExpirationSeconds int) *AuthService {
	return &AuthService{
		jwtSecret:         jwtSecret,
		jwtExpiration:     time.Duration(jwtExpirationSeconds) * time.Second,
		blacklistedTokens: make(map[string]time.Time),
	}
}

// JWTClaims represents JWT token claims
type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for a user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "agrilink",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	if s.IsTokenBlacklisted(tokenString) {
		return nil, fmt.Errorf("token has been revoked")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// RefreshToken issues a fresh token carrying the same identity as a still
// valid token.
func (s *AuthService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  models.UserRole(claims.Role),
	}
	return s.GenerateToken(user)
}

// BlacklistToken revokes a token until its natural expiry.
func (s *AuthService) BlacklistToken(tokenString string) {
	claims, err := s.ValidateToken(tokenString)

	expiry := time.Now().Add(s.jwtExpiration)
	if err == nil && claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()
	s.blacklistedTokens[tokenString] = expiry

	// Drop entries that expired on their own.
	now := time.Now()
	for token, exp := range s.blacklistedTokens {
		if exp.Before(now) {
			delete(s.blacklistedTokens, token)
		}
	}
}

// IsTokenBlacklisted reports whether a token has been revoked.
func (s *AuthService) IsTokenBlacklisted(tokenString string) bool {
	s.blacklistMutex.RLock()
	defer s.blacklistMutex.RUnlock()
	expiry, found := s.blacklistedTokens[tokenString]
	if !found {
		return false
	}
	return expiry.After(time.Now())
}
