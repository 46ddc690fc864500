package entity

import "github.com/shopspring/decimal"

// AccountMovement saldo previo y movimientos del día de una cuenta contable.
type AccountMovement struct {
	AccountID   string
	AccountCode string
	AccountName string
	Opening     decimal.Decimal // Σ(debe − haber) antes del día
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}
