// Package auth contiene la verificación de tokens Bearer y el login de usuarios.
package auth

import (
	"errors"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/jwt"
)

// ErrUnauthenticated único resultado visible de una verificación fallida. No distingue
// entre header ausente, firma inválida o token expirado.
var ErrUnauthenticated = errors.New("unauthenticated")

const bearerPrefix = "Bearer "

// Identity identidad decodificada del token; inmutable durante la petición.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// TokenVerifier valida el header Authorization contra el secreto configurado.
// No hace I/O: el resultado depende solo del header, el secreto y el reloj.
type TokenVerifier struct {
	secret string
	opts   []gojwt.ParserOption
}

// NewTokenVerifier construye el verificador. opts permite fijar el reloj en tests
// (jwt.WithTimeFunc).
func NewTokenVerifier(secret string, opts ...gojwt.ParserOption) *TokenVerifier {
	return &TokenVerifier{secret: secret, opts: opts}
}

// Verify devuelve la identidad o nil si el header no es exactamente "Bearer <token>",
// la firma no corresponde, el token expiró o falta algún claim.
func (v *TokenVerifier) Verify(header string) *Identity {
	token, ok := bearerToken(header)
	if !ok {
		return nil
	}
	claims, err := jwt.Parse(v.secret, token, v.opts...)
	if err != nil {
		return nil
	}
	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}
}

// Require aplica la misma decisión que Verify pero devuelve ErrUnauthenticated,
// para llamadores que prefieren propagar el error.
func (v *TokenVerifier) Require(header string) (*Identity, error) {
	id := v.Verify(header)
	if id == nil {
		return nil, ErrUnauthenticated
	}
	return id, nil
}

// bearerToken extrae el token de "Bearer <token>". Esquema sensible a mayúsculas,
// un único espacio y ningún espacio dentro del token.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
