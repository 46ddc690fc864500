package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo lecturas de accounts / vouchers / voucher_entries. Las tablas las escribe el
// backend contable; aquí solo se consultan.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// AccountMovements saldo previo y movimientos del día por cuenta, solo comprobantes contabilizados.
// Las cuentas sin saldo ni movimientos se omiten.
func (r *LedgerRepo) AccountMovements(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.AccountMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT a.id, a.code, a.name,
		       COALESCE(SUM(e.debit - e.credit) FILTER (WHERE v.date < $1), 0)              AS opening,
		       COALESCE(SUM(e.debit)  FILTER (WHERE v.date >= $1 AND v.date < $2), 0)        AS debit,
		       COALESCE(SUM(e.credit) FILTER (WHERE v.date >= $1 AND v.date < $2), 0)        AS credit
		FROM accounts a
		JOIN voucher_entries e ON e.account_id = a.id
		JOIN vouchers v ON v.id = e.voucher_id AND v.status = 'posted'
		WHERE v.date < $2
		GROUP BY a.id, a.code, a.name
		ORDER BY a.code ASC`, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("daily closing movements: %w", err)
	}
	defer rows.Close()
	list := make([]entity.AccountMovement, 0)
	for rows.Next() {
		var m entity.AccountMovement
		if err := rows.Scan(&m.AccountID, &m.AccountCode, &m.AccountName, &m.Opening, &m.Debit, &m.Credit); err != nil {
			return nil, fmt.Errorf("scan account movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
