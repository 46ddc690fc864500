// seed crea el usuario administrador inicial y un almacén por defecto.
//
// Uso: go run ./cmd/seed -email admin@crystal.local -password <clave>
// Es idempotente: si el usuario ya existe no lo modifica.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/postgres"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/config"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/logger"
)

func main() {
	email := flag.String("email", "admin@crystal.local", "email del administrador")
	password := flag.String("password", "", "contraseña del administrador (mínimo 8 caracteres)")
	name := flag.String("name", "Administrador", "nombre visible")
	storeCode := flag.String("store", "MAIN", "código del almacén por defecto (vacío para omitir)")
	flag.Parse()

	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "password debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	now := time.Now().UTC()
	if existing != nil {
		log.Info().Str("email", existing.Email).Msg("el administrador ya existe, se omite")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        strings.ToLower(strings.TrimSpace(*email)),
			PasswordHash: string(hash),
			Name:         *name,
			Role:         entity.RoleAdmin,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Str("email", user.Email).Msg("administrador creado")
	}

	if *storeCode == "" {
		return
	}
	store := &entity.Store{
		ID:        uuid.New().String(),
		Code:      *storeCode,
		Name:      "Almacén principal",
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := postgres.NewStoreRepository(pool).Create(ctx, store); err != nil {
		// código duplicado: el almacén ya fue sembrado
		log.Warn().Err(err).Str("code", store.Code).Msg("almacén no creado")
		return
	}
	log.Info().Str("code", store.Code).Msg("almacén creado")
}
