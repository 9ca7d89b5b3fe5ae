package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and checks the HS256 bearer tokens used by the API.
// Tokens are stateless: subject is the user's email, there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for the given subject email, valid for the configured TTL.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate reports whether the token parses, the signature matches and the
// token has not expired. Any malformed input, an empty string included, is
// simply invalid; this never panics or returns an error to the caller.
func (s *TokenService) Validate(tokenString string) bool {
	token, err := s.parse(tokenString)
	return err == nil && token.Valid
}

// Subject returns the subject email of a token. Callers must have checked
// Validate first; an invalid token yields an error here.
func (s *TokenService) Subject(tokenString string) (string, error) {
	token, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.GetSubject()
}

func (s *TokenService) parse(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
}
