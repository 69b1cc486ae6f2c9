package services

import (
	"fmt"
	"strings"
	"time"

	"hikebook/constants"
	"hikebook/errors"
	"hikebook/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims là payload của bearer token
type TokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

// TokenIssuer ký và kiểm tra token HS256
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    constants.TokenTTL,
		now:    time.Now,
	}
}

// Generate tạo token sống 24h cho user
func (t *TokenIssuer) Generate(user *models.User) (string, error) {
	now := t.now()
	claims := &TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể tạo token", err)
	}
	return signed, nil
}

// Parse kiểm tra chữ ký và hạn của token
func (t *TokenIssuer) Parse(tokenString string) (*TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Token trống", errors.ErrUnauthorized)
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.NewAppError(errors.ErrCodeExpiredToken, "Token đã hết hạn", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}
	return claims, nil
}
