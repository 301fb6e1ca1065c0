package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

var (
	ErrEmptySecret  = errors.New("signing secret cannot be empty")
	ErrInvalidToken = errors.New("Invalid or expired token")
)

// DefaultTokenTTL applies when no lifetime is configured.
const DefaultTokenTTL = 24 * time.Hour

// AuthConfig is injected at construction; the signing secret is
// process-wide and read-only after startup. Tokens signed with one
// secret cannot be verified after the secret changes.
type AuthConfig struct {
	Secret string
	// TokenTTL bounds token lifetime. Zero means DefaultTokenTTL.
	TokenTTL time.Duration
	// NeverExpire issues tokens without an expiry claim. Opt-in only;
	// permanent tokens are a liability and never the default.
	NeverExpire bool
}

type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller extracted from verified claims.
// It lives only for the duration of one request.
type Identity struct {
	ID       int
	Username string
	Role     string
}

type AuthService struct {
	cfg    AuthConfig
	logger zerolog.Logger
}

func NewAuthService(cfg AuthConfig, logger zerolog.Logger) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	return &AuthService{cfg: cfg, logger: logger}, nil
}

// GenerateToken issues a signed token embedding id, username and role.
func (s *AuthService) GenerateToken(id int, username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:       id,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if !s.cfg.NeverExpire {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.cfg.TokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error().Err(err).Msg("Error generating token")
		return "", err
	}
	return tokenString, nil
}

// VerifyToken validates signature and expiry. Any failure, malformed
// input included, collapses to ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: claims.ID, Username: claims.Username, Role: claims.Role}, nil
}

// Authorize reports whether the identity is present and holds the
// required role. Pure predicate, no store access.
func Authorize(identity *Identity, requiredRole string) bool {
	return identity != nil && identity.Role == requiredRole
}
