package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.Email] = u
	return nil
}

func newLoginFixture(t *testing.T, status string) *LoginUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"ana@crystal.test": {ID: "u-1", Email: "ana@crystal.test", Name: "Ana", Role: entity.RoleAdmin, Status: status, PasswordHash: string(hash)},
	}}
	return NewLoginUseCase(repo, JWTConfig{Secret: "s", ExpMinutes: 5, Issuer: "test"})
}

func TestLogin_EmiteTokenVerificable(t *testing.T) {
	uc := newLoginFixture(t, entity.StatusActive)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: " ANA@crystal.test ", Password: "correct-horse"})
	require.NoError(t, err)

	id := NewTokenVerifier("s").Verify("Bearer " + out.Token)
	require.NotNil(t, id)
	assert.Equal(t, "Ana", id.Name)
	assert.Equal(t, entity.RoleAdmin, id.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newLoginFixture(t, entity.StatusActive)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@crystal.test", Password: "wrong"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := newLoginFixture(t, entity.StatusInactive)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@crystal.test", Password: "correct-horse"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestLogin_LimiteDeIntentos(t *testing.T) {
	uc := newLoginFixture(t, entity.StatusActive)
	var last error
	for i := 0; i < 6; i++ {
		_, last = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@crystal.test", Password: "x"})
	}
	assert.True(t, errors.Is(last, domain.ErrRateLimited))
}
