//go:build unit

package contract_test

import (
	"testing"
	"time"

	"rental-contracts/internal/domain/contract"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, start, end string) contract.Period {
	t.Helper()
	p, err := contract.ParsePeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantDays int
		wantErr  error
	}{
		{name: "success: two days", start: "2025-03-01", end: "2025-03-02", wantDays: 2},
		{name: "success: inclusive range counts both ends", start: "2025-03-01", end: "2025-03-03", wantDays: 3},
		{name: "success: crosses a month boundary", start: "2025-02-27", end: "2025-03-02", wantDays: 4},
		{name: "success: leap day", start: "2024-02-28", end: "2024-03-01", wantDays: 3},
		{name: "success: range longer than a time.Duration", start: "1000-01-01", end: "1500-01-01", wantDays: 182622},
		{name: "success: full calendar range", start: "0001-01-01", end: "9999-12-31", wantDays: 3652059},
		{name: "error: end equals start", start: "2025-03-01", end: "2025-03-01", wantErr: contract.ErrInvalidDateRange},
		{name: "error: end before start", start: "2025-03-05", end: "2025-03-01", wantErr: contract.ErrInvalidDateRange},
		{name: "error: malformed start", start: "2025/03/01", end: "2025-03-02", wantErr: contract.ErrInvalidDate},
		{name: "error: malformed end", start: "2025-03-01", end: "tomorrow", wantErr: contract.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := contract.ParsePeriod(tt.start, tt.end)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, p.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, p.Days())
			assert.Equal(t, tt.start, p.Start().Format(contract.DateLayout))
			assert.Equal(t, tt.end, p.End().Format(contract.DateLayout))
		})
	}
}

func TestNewPeriod_TruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	start := time.Date(2025, 3, 1, 23, 30, 0, 0, loc)
	end := time.Date(2025, 3, 2, 1, 0, 0, 0, loc)

	p, err := contract.NewPeriod(start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, 2, p.Days())
}

func TestPeriod_Overlaps(t *testing.T) {
	base := mustPeriod(t, "2025-03-10", "2025-03-15")

	tests := []struct {
		name  string
		other contract.Period
		want  bool
	}{
		{name: "identical ranges", other: mustPeriod(t, "2025-03-10", "2025-03-15"), want: true},
		{name: "other contained", other: mustPeriod(t, "2025-03-11", "2025-03-12"), want: true},
		{name: "other contains", other: mustPeriod(t, "2025-03-01", "2025-03-31"), want: true},
		{name: "shares the first day", other: mustPeriod(t, "2025-03-05", "2025-03-10"), want: true},
		{name: "shares the last day", other: mustPeriod(t, "2025-03-15", "2025-03-20"), want: true},
		{name: "ends the day before", other: mustPeriod(t, "2025-03-01", "2025-03-09"), want: false},
		{name: "starts the day after", other: mustPeriod(t, "2025-03-16", "2025-03-20"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDefaultPriceCalculator(t *testing.T) {
	calc := contract.NewDefaultPriceCalculator()
	period := mustPeriod(t, "2025-03-01", "2025-03-03")

	lines := []contract.Line{
		{EquipmentID: uuid.New(), Quantity: 2, DailyRate: decimal.RequireFromString("80.00")},
		{EquipmentID: uuid.New(), Quantity: 1, DailyRate: decimal.RequireFromString("12.50")},
		{EquipmentID: uuid.New(), Quantity: 3, DailyRate: decimal.Zero},
	}

	totals := calc.Calculate(period, lines)

	assert.Equal(t, 3, totals.TotalDays)
	require.Len(t, totals.Subtotals, 3)
	assert.True(t, decimal.RequireFromString("480.00").Equal(totals.Subtotals[0]), "got %s", totals.Subtotals[0])
	assert.True(t, decimal.RequireFromString("37.50").Equal(totals.Subtotals[1]), "got %s", totals.Subtotals[1])
	assert.True(t, totals.Subtotals[2].IsZero())
	assert.True(t, decimal.RequireFromString("517.50").Equal(totals.TotalValue), "got %s", totals.TotalValue)
}

func TestComputeTotals(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	line := contract.Line{EquipmentID: uuid.New(), Quantity: 1, DailyRate: decimal.RequireFromString("100")}

	t.Run("success: prices the inclusive range", func(t *testing.T) {
		totals, err := contract.ComputeTotals(start, start.AddDate(0, 0, 6), []contract.Line{line})
		require.NoError(t, err)
		assert.Equal(t, 7, totals.TotalDays)
		assert.True(t, decimal.NewFromInt(700).Equal(totals.TotalValue))
	})

	t.Run("success: subtotal equals rate times quantity times days at cent precision", func(t *testing.T) {
		cents := contract.Line{EquipmentID: uuid.New(), Quantity: 3, DailyRate: decimal.RequireFromString("0.01")}
		totals, err := contract.ComputeTotals(start, start.AddDate(0, 0, 2), []contract.Line{cents, line})
		require.NoError(t, err)
		assert.Equal(t, "0.09", totals.Subtotals[0].StringFixed(2))
		assert.True(t, totals.Subtotals[0].Equal(totals.Subtotals[0].Round(contract.MoneyScale)))
		assert.True(t, totals.Subtotals[0].Add(totals.Subtotals[1]).Equal(totals.TotalValue))
	})

	t.Run("error: empty range", func(t *testing.T) {
		_, err := contract.ComputeTotals(start, start, []contract.Line{line})
		require.ErrorIs(t, err, contract.ErrInvalidDateRange)
	})

	t.Run("error: sub-cent rate", func(t *testing.T) {
		fraction := contract.Line{EquipmentID: uuid.New(), Quantity: 1, DailyRate: decimal.RequireFromString("0.005")}
		_, err := contract.ComputeTotals(start, start.AddDate(0, 0, 2), []contract.Line{fraction})
		require.ErrorIs(t, err, contract.ErrDailyRatePrecision)
	})

	t.Run("error: total does not fit the amount column", func(t *testing.T) {
		big := contract.Line{EquipmentID: uuid.New(), Quantity: contract.MaxQuantity, DailyRate: decimal.RequireFromString("1000.00")}
		_, err := contract.ComputeTotals(start, start.AddDate(0, 0, 199), []contract.Line{big})
		require.ErrorIs(t, err, contract.ErrAmountTooLarge)
	})
}

func TestValidateTotals(t *testing.T) {
	limit := contract.MaxAmount
	belowLimit := limit.Sub(decimal.RequireFromString("0.01"))

	tests := []struct {
		name    string
		totals  contract.Totals
		wantErr error
	}{
		{name: "success: largest storable total", totals: contract.Totals{TotalValue: belowLimit, Subtotals: []decimal.Decimal{belowLimit}}},
		{name: "error: total at the limit", totals: contract.Totals{TotalValue: limit, Subtotals: []decimal.Decimal{belowLimit, decimal.RequireFromString("0.01")}}, wantErr: contract.ErrAmountTooLarge},
		{name: "error: subtotal at the limit", totals: contract.Totals{TotalValue: belowLimit, Subtotals: []decimal.Decimal{limit}}, wantErr: contract.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := contract.ValidateTotals(tt.totals)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLine(t *testing.T) {
	valid := contract.Line{EquipmentID: uuid.New(), Quantity: 1, DailyRate: decimal.Zero}

	tests := []struct {
		name    string
		mutate  func(*contract.Line)
		wantErr error
	}{
		{name: "success: zero rate is allowed", mutate: func(*contract.Line) {}},
		{name: "error: missing equipment", mutate: func(l *contract.Line) { l.EquipmentID = uuid.Nil }, wantErr: contract.ErrMissingEquipment},
		{name: "error: zero quantity", mutate: func(l *contract.Line) { l.Quantity = 0 }, wantErr: contract.ErrInvalidQuantity},
		{name: "success: trailing zeros past two places", mutate: func(l *contract.Line) { l.DailyRate = decimal.RequireFromString("12.500") }},
		{name: "success: largest rate and quantity", mutate: func(l *contract.Line) {
			l.DailyRate = decimal.RequireFromString("99999999.99")
			l.Quantity = contract.MaxQuantity
		}},
		{name: "error: negative rate", mutate: func(l *contract.Line) { l.DailyRate = decimal.NewFromInt(-1) }, wantErr: contract.ErrNegativeDailyRate},
		{name: "error: rate below a cent", mutate: func(l *contract.Line) { l.DailyRate = decimal.RequireFromString("0.005") }, wantErr: contract.ErrDailyRatePrecision},
		{name: "error: rate too large", mutate: func(l *contract.Line) { l.DailyRate = decimal.NewFromInt(100_000_000) }, wantErr: contract.ErrDailyRateTooLarge},
		{name: "error: quantity too large", mutate: func(l *contract.Line) { l.Quantity = contract.MaxQuantity + 1 }, wantErr: contract.ErrQuantityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			err := contract.ValidateLine(l)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
