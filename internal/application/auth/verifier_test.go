package auth_test

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	pkgjwt "github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func signed(t *testing.T, secret string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, pkgjwt.Subject{
		UserID: "u-1", Email: "ana@crystal.test", Name: "Ana", Role: "admin",
	}, "crystal-test", expMinutes)
	require.NoError(t, err)
	return tok
}

func TestVerify_TokenValido(t *testing.T) {
	v := auth.NewTokenVerifier(testSecret)
	id := v.Verify("Bearer " + signed(t, testSecret, 60))
	require.NotNil(t, id)
	assert.Equal(t, auth.Identity{UserID: "u-1", Email: "ana@crystal.test", Name: "Ana", Role: "admin"}, *id)
}

func TestVerify_HeadersMalformados(t *testing.T) {
	v := auth.NewTokenVerifier(testSecret)
	tok := signed(t, testSecret, 60)

	cases := map[string]string{
		"vacío":             "",
		"sin esquema":       tok,
		"esquema minúscula": "bearer " + tok,
		"otro esquema":      "Basic " + tok,
		"doble espacio":     "Bearer  " + tok,
		"token vacío":       "Bearer ",
		"espacio extra":     "Bearer " + tok + " extra",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, v.Verify(header))
		})
	}
}

func TestVerify_FirmaIncorrectaYExpirado(t *testing.T) {
	v := auth.NewTokenVerifier(testSecret)
	assert.Nil(t, v.Verify("Bearer "+signed(t, "otro-secreto", 60)))
	assert.Nil(t, v.Verify("Bearer "+signed(t, testSecret, -1)))
}

func TestVerify_RelojInyectado(t *testing.T) {
	tok := signed(t, testSecret, 60)
	future := auth.NewTokenVerifier(testSecret, gojwt.WithTimeFunc(func() time.Time {
		return time.Now().Add(2 * time.Hour)
	}))
	assert.Nil(t, future.Verify("Bearer "+tok), "con el reloj adelantado el token ya expiró")
}

func TestRequire_ErrorDistinguible(t *testing.T) {
	v := auth.NewTokenVerifier(testSecret)

	_, err := v.Require("Bearer nope")
	assert.True(t, errors.Is(err, auth.ErrUnauthenticated))

	id, err := v.Require("Bearer " + signed(t, testSecret, 60))
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
}
