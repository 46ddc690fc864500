package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

type fakeLedger struct {
	start, end time.Time
	rows       []entity.AccountMovement
}

func (f *fakeLedger) AccountMovements(_ context.Context, dayStart, dayEnd time.Time) ([]entity.AccountMovement, error) {
	f.start, f.end = dayStart, dayEnd
	return f.rows, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDailyClosing_SaldosYTotales(t *testing.T) {
	ledger := &fakeLedger{rows: []entity.AccountMovement{
		{AccountID: "a1", AccountCode: "1105", AccountName: "Caja", Opening: dec("1000.00"), Debit: dec("250.50"), Credit: dec("100.25")},
		{AccountID: "a2", AccountCode: "4135", AccountName: "Ventas", Opening: dec("-500"), Debit: dec("0"), Credit: dec("250.50")},
	}}
	uc := NewDailyClosingUseCase(ledger)
	uc.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	out, err := uc.GetDailyClosing(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", out.Date)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), ledger.start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), ledger.end)
	require.Len(t, out.Accounts, 2)
	assert.True(t, dec("1150.25").Equal(out.Accounts[0].Closing))
	assert.True(t, dec("-750.50").Equal(out.Accounts[1].Closing))
	assert.True(t, dec("500").Equal(out.Totals.Opening))
	assert.True(t, dec("399.75").Equal(out.Totals.Closing))
}

func TestDailyClosing_FechaPorDefectoYFormatoInvalido(t *testing.T) {
	ledger := &fakeLedger{}
	uc := NewDailyClosingUseCase(ledger)
	uc.now = func() time.Time { return time.Date(2025, 3, 14, 22, 45, 0, 0, time.UTC) }

	out, err := uc.GetDailyClosing(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", out.Date)
	assert.NotNil(t, out.Accounts)
	assert.True(t, out.Totals.Closing.IsZero())

	_, err = uc.GetDailyClosing(context.Background(), "14/03/2025")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
