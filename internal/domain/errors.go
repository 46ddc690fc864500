package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los textos llegan al cliente en el
// campo "message", por eso están en inglés como el resto del contrato HTTP.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("already exists")
	ErrDependency   = errors.New("resource is referenced")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream request failed")
	ErrRateLimited  = errors.New("too many requests")
)

// DependencyError bloquea un borrado mientras existan registros que apuntan al recurso.
// El mensaje incluye el número de referencias para que el cliente pueda mostrarlo.
type DependencyError struct {
	Resource   string // "brand", "category", ...
	Dependents string // "parts", "kit items", ...
	Count      int
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot delete %s: it is used by %d %s", e.Resource, e.Count, e.Dependents)
}

// Is permite errors.Is(err, ErrDependency).
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependency
}

// Error lleva el mensaje para el cliente junto a su categoría (uno de los Err* de arriba).
// Sigue encontrándose con errors.As aunque un repositorio lo envuelva con contexto.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Invalid envuelve ErrInvalidInput con un mensaje orientado al campo.
func Invalid(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Duplicate envuelve ErrDuplicate con un mensaje legible ("Brand already exists").
func Duplicate(msg string) error {
	return &Error{Kind: ErrDuplicate, Msg: msg}
}

// NotFound envuelve ErrNotFound indicando qué recurso falta.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}
