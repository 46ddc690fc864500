package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder_FiltrosVaciosNoAgreganCondicion(t *testing.T) {
	w := &whereBuilder{}
	w.Eq("status", "").ILike("name", "").AnyILike([]string{"a", "b"}, "")
	assert.Equal(t, "", w.SQL())
	assert.Empty(t, w.Args())
}

func TestWhereBuilder_CombinaCondiciones(t *testing.T) {
	w := &whereBuilder{}
	w.Eq("p.status", "active").
		AnyILike([]string{"p.part_no", "p.master_part_no", "p.description"}, "filt").
		Eq("p.brand", "Bosch")
	page := w.Page(10, 20)

	assert.Equal(t,
		" WHERE p.status = $1 AND (p.part_no ILIKE $2 OR p.master_part_no ILIKE $2 OR p.description ILIKE $2) AND p.brand = $3",
		w.SQL())
	assert.Equal(t, " LIMIT $4 OFFSET $5", page)
	assert.Equal(t, []any{"active", "%filt%", "Bosch", 10, 20}, w.Args())
}

func TestWhereBuilder_ILikeSimpleSinParentesis(t *testing.T) {
	w := &whereBuilder{}
	w.ILike("name", "50%_off")
	assert.Equal(t, " WHERE name ILIKE $1", w.SQL())
	assert.Equal(t, []any{`%50\%\_off%`}, w.Args())
}

func TestWhereBuilder_SinLimiteNoPagina(t *testing.T) {
	w := &whereBuilder{}
	assert.Equal(t, "", w.Page(0, 0))
	assert.Empty(t, w.Args())
}
