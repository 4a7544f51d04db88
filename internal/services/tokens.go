package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// TokenService issues and verifies the stateless bearer tokens that gate the
// admin API. There is no revocation list; a token stays valid until expiry.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func (t TokenService) HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (t TokenService) VerifyPassword(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}

// IssueToken signs a token embedding the admin id with a fixed expiry.
func (t TokenService) IssueToken(adminID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": adminID,
		"iat": now.Unix(),
		"exp": now.Add(t.TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

// ParseToken verifies signature and expiry and returns the embedded admin id.
func (t TokenService) ParseToken(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	adminID, _ := claims["sub"].(string)
	if adminID == "" {
		return "", errors.New("invalid token")
	}
	return adminID, nil
}
