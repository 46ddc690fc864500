package dto

import "github.com/shopspring/decimal"

// StatValue conteo actual, conteo hace 30 días y variación porcentual entera.
type StatValue struct {
	Current       int `json:"current"`
	Previous      int `json:"previous"`
	ChangePercent int `json:"changePercent"`
}

// Stats contadores del dashboard.
type Stats struct {
	Parts      StatValue `json:"parts"`
	Categories StatValue `json:"categories"`
	Kits       StatValue `json:"kits"`
	Suppliers  StatValue `json:"suppliers"`
}

// Sparklines series acumuladas de 14 días (la más antigua primero), no decrecientes.
type Sparklines struct {
	Parts      []int `json:"parts"`
	Categories []int `json:"categories"`
	Kits       []int `json:"kits"`
	Suppliers  []int `json:"suppliers"`
}

// StatsResponse respuesta de GET /stats.
type StatsResponse struct {
	Stats      Stats      `json:"stats"`
	Sparklines Sparklines `json:"sparklines"`
}

// AccountClosingDTO una cuenta en el cierre diario.
type AccountClosingDTO struct {
	AccountID string          `json:"accountId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Opening   decimal.Decimal `json:"openingBalance"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Closing   decimal.Decimal `json:"closingBalance"`
}

// ClosingTotals sumas de todas las cuentas.
type ClosingTotals struct {
	Opening decimal.Decimal `json:"openingBalance"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Closing decimal.Decimal `json:"closingBalance"`
}

// DailyClosingResponse respuesta de GET /reports/daily-closing.
type DailyClosingResponse struct {
	Date     string              `json:"date"`
	Accounts []AccountClosingDTO `json:"accounts"`
	Totals   ClosingTotals       `json:"totals"`
}
