package auth

import (
	"context"
	"strings"
	"time"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginUseCase verifica credenciales y emite tokens con la identidad completa.
type LoginUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	limiter  *rate.Limiter
}

// NewLoginUseCase construye el caso de uso. Se admiten 10 intentos por minuto con ráfaga de 5.
func NewLoginUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		limiter:  rate.NewLimiter(rate.Every(6*time.Second), 5),
	}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *LoginUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.limiter.Allow() {
		return nil, domain.ErrRateLimited
	}
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}
