// Package auth issues and verifies the organizer's bearer tokens. There is
// a single organizer account, held in configuration; no user data is
// persisted anywhere.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "skireis"

// ErrInvalidCredentials is returned when the username/password pair does
// not match the configured organizer account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims are the JWT claims carried by an organizer token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies organizer tokens.
type Service struct {
	username     string
	passwordHash string
	secret       []byte
	tokenTTL     time.Duration
}

// NewService creates an auth service for the configured organizer account.
// passwordHash must be a bcrypt hash.
func NewService(username, passwordHash, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
	}
}

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login checks the credentials and issues a signed token.
func (s *Service) Login(username, password string) (token string, expiresAt time.Time, err error) {
	if username != s.username {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt = now.Add(s.tokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	})
	token, err = tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates a token string.
func (s *Service) Verify(token string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("bad claims")
	}
	return claims, nil
}

// Middleware guards a route group with bearer-token auth. On success the
// organizer's username is stored in the gin context under "username".
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}

		claims, err := s.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bad token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
