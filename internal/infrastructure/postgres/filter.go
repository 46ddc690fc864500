package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder arma la cláusula WHERE de los listados con placeholders $n.
// Los filtros vacíos no agregan condición.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// Eq agrega col = valor.
func (w *whereBuilder) Eq(col, value string) *whereBuilder {
	if value == "" {
		return w
	}
	w.clauses = append(w.clauses, fmt.Sprintf("%s = %s", col, w.arg(value)))
	return w
}

// ILike agrega búsqueda por subcadena sin distinguir mayúsculas.
func (w *whereBuilder) ILike(col, value string) *whereBuilder {
	return w.AnyILike([]string{col}, value)
}

// AnyILike agrega (c1 ILIKE $n OR c2 ILIKE $n ...) con un único parámetro.
func (w *whereBuilder) AnyILike(cols []string, value string) *whereBuilder {
	if value == "" || len(cols) == 0 {
		return w
	}
	ph := w.arg("%" + escapeLike(value) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s ILIKE %s", c, ph)
	}
	if len(parts) == 1 {
		w.clauses = append(w.clauses, parts[0])
	} else {
		w.clauses = append(w.clauses, "("+strings.Join(parts, " OR ")+")")
	}
	return w
}

// SQL devuelve " WHERE ..." o cadena vacía.
func (w *whereBuilder) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Args parámetros acumulados, en orden de placeholder.
func (w *whereBuilder) Args() []any {
	return w.args
}

// Page agrega LIMIT/OFFSET al final; limit <= 0 no pagina.
func (w *whereBuilder) Page(limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(limit), w.arg(offset))
}

// escapeLike escapa los comodines de LIKE para que la búsqueda sea literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
