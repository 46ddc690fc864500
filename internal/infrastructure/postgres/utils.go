package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: el borrado choca con filas que aún referencian la fila.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// mapWriteError traduce violaciones de constraints a errores de dominio.
func mapWriteError(err error, duplicateMsg, op string) error {
	switch {
	case isUniqueViolation(err):
		return domain.Duplicate(duplicateMsg)
	case isForeignKeyViolation(err):
		return domain.Invalid("%s: referenced record does not exist or is still in use", op)
	default:
		return err
	}
}

// isUUID acepta solo la forma canónica de 36 caracteres. Un id con otra forma no puede
// existir en una columna uuid y pgx ni siquiera logra codificarlo.
func isUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
