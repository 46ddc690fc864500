package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingClaims el token es válido pero le falta alguno de los claims obligatorios.
var ErrMissingClaims = errors.New("jwt: claims obligatorios ausentes")

// Claims incluye los claims estándar JWT más la identidad del usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Subject identidad que se firma en el token.
type Subject struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// Generate genera un token HS256 firmado con la identidad indicada.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: sub.UserID,
		Email:  sub.Email,
		Name:   sub.Name,
		Role:   sub.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado, con firma incorrecta o sin alguno
// de los cuatro claims de identidad.
func Parse(secret, tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" || claims.Email == "" || claims.Name == "" || claims.Role == "" {
		return nil, ErrMissingClaims
	}
	return claims, nil
}
