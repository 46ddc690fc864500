package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// DailyClosingUseCase cierre diario por cuenta contable:
// saldo inicial = Σ(debe − haber) antes del día; saldo final = inicial + debe − haber del día.
type DailyClosingUseCase struct {
	ledger repository.LedgerRepository
	now    func() time.Time
}

// NewDailyClosingUseCase construye el caso de uso.
func NewDailyClosingUseCase(ledger repository.LedgerRepository) *DailyClosingUseCase {
	return &DailyClosingUseCase{ledger: ledger, now: time.Now}
}

// GetDailyClosing genera el cierre del día indicado (YYYY-MM-DD, vacío = hoy).
func (uc *DailyClosingUseCase) GetDailyClosing(ctx context.Context, date string) (*dto.DailyClosingResponse, error) {
	loc := uc.now().Location()
	var day time.Time
	if strings.TrimSpace(date) == "" {
		n := uc.now()
		day = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	} else {
		d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), loc)
		if err != nil {
			return nil, domain.Invalid("date must be YYYY-MM-DD")
		}
		day = d
	}

	movements, err := uc.ledger.AccountMovements(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := &dto.DailyClosingResponse{
		Date:     day.Format(dateLayout),
		Accounts: make([]dto.AccountClosingDTO, 0, len(movements)),
		Totals: dto.ClosingTotals{
			Opening: decimal.Zero,
			Debit:   decimal.Zero,
			Credit:  decimal.Zero,
			Closing: decimal.Zero,
		},
	}
	for _, m := range movements {
		closing := m.Opening.Add(m.Debit).Sub(m.Credit)
		out.Accounts = append(out.Accounts, dto.AccountClosingDTO{
			AccountID: m.AccountID,
			Code:      m.AccountCode,
			Name:      m.AccountName,
			Opening:   m.Opening,
			Debit:     m.Debit,
			Credit:    m.Credit,
			Closing:   closing,
		})
		out.Totals.Opening = out.Totals.Opening.Add(m.Opening)
		out.Totals.Debit = out.Totals.Debit.Add(m.Debit)
		out.Totals.Credit = out.Totals.Credit.Add(m.Credit)
		out.Totals.Closing = out.Totals.Closing.Add(closing)
	}
	return out, nil
}
