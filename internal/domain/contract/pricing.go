package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are stored with two fraction digits: rates as numeric(10,2),
// subtotals and totals as numeric(12,2).
const (
	MoneyScale  = 2
	MaxQuantity = 100_000
)

var (
	MaxDailyRate = decimal.New(1, 8)  // exclusive
	MaxAmount    = decimal.New(1, 10) // exclusive
)

type Line struct {
	EquipmentID uuid.UUID
	Quantity    int
	DailyRate   decimal.Decimal
}

type Totals struct {
	TotalDays  int
	TotalValue decimal.Decimal
	Subtotals  []decimal.Decimal
}

type PriceCalculator interface {
	Calculate(period Period, lines []Line) Totals
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Calculate multiplies each rate by quantity and the inclusive day count.
func (DefaultPriceCalculator) Calculate(period Period, lines []Line) Totals {
	days := period.Days()
	daysDec := decimal.NewFromInt(int64(days))

	totals := Totals{
		TotalDays:  days,
		TotalValue: decimal.Zero,
		Subtotals:  make([]decimal.Decimal, len(lines)),
	}
	for i, l := range lines {
		sub := l.DailyRate.Mul(decimal.NewFromInt(int64(l.Quantity))).Mul(daysDec)
		totals.Subtotals[i] = sub
		totals.TotalValue = totals.TotalValue.Add(sub)
	}
	return totals
}

func ComputeTotals(start, end time.Time, lines []Line) (Totals, error) {
	period, err := NewPeriod(start, end)
	if err != nil {
		return Totals{}, err
	}
	for _, l := range lines {
		if err := ValidateLine(l); err != nil {
			return Totals{}, err
		}
	}
	totals := DefaultPriceCalculator{}.Calculate(period, lines)
	if err := ValidateTotals(totals); err != nil {
		return Totals{}, err
	}
	return totals, nil
}

func ValidateLine(l Line) error {
	if l.EquipmentID == uuid.Nil {
		return ErrMissingEquipment
	}
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if l.Quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	if l.DailyRate.IsNegative() {
		return ErrNegativeDailyRate
	}
	if !l.DailyRate.Equal(l.DailyRate.Round(MoneyScale)) {
		return ErrDailyRatePrecision
	}
	if l.DailyRate.GreaterThanOrEqual(MaxDailyRate) {
		return ErrDailyRateTooLarge
	}
	return nil
}

// ValidateTotals rejects totals that do not fit the stored amount columns.
func ValidateTotals(t Totals) error {
	if t.TotalValue.GreaterThanOrEqual(MaxAmount) {
		return ErrAmountTooLarge
	}
	for _, sub := range t.Subtotals {
		if sub.GreaterThanOrEqual(MaxAmount) {
			return ErrAmountTooLarge
		}
	}
	return nil
}
