//go:build unit

package queries_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/ptr"
	"rental-contracts/internal/usecase/queries"
	"rental-contracts/tests/common/builder"
	queriesmock "rental-contracts/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type contractQueriesFixture struct {
	contracts *queriesmock.MockContractReadStore
	equipment *queriesmock.MockEquipmentReadStore
	q         queries.ContractQueries
}

func newContractQueries(t *testing.T) contractQueriesFixture {
	ctrl := gomock.NewController(t)
	f := contractQueriesFixture{
		contracts: queriesmock.NewMockContractReadStore(ctrl),
		equipment: queriesmock.NewMockEquipmentReadStore(ctrl),
	}
	f.q = queries.NewContractQueries(f.contracts, f.equipment, contract.NewDefaultPriceCalculator())
	return f
}

func TestContractQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the view", func(t *testing.T) {
		f := newContractQueries(t)
		view := builder.NewContractBuilder().BuildView()
		f.contracts.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := f.q.GetByID(ctx, view.ID)

		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("error: not found maps to the usecase error", func(t *testing.T) {
		f := newContractQueries(t)
		id := uuid.New()
		f.contracts.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("contract not found", nil, infra.KindNotFound))

		_, err := f.q.GetByID(ctx, id)

		assert.ErrorIs(t, err, queries.ErrContractNotFound)
	})
}

func TestContractQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults page and size", func(t *testing.T) {
		f := newContractQueries(t)
		items := []*queries.ContractListItem{{ID: uuid.New()}, {ID: uuid.New()}}
		f.contracts.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, filter queries.ContractFilter) ([]*queries.ContractListItem, int, error) {
				assert.Equal(t, 1, filter.Page)
				assert.Equal(t, queries.DefaultPageSize, filter.PageSize)
				return items, 45, nil
			})

		page, err := f.q.List(ctx, queries.ContractFilter{})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 45, page.Total)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("success: empty result has zero pages", func(t *testing.T) {
		f := newContractQueries(t)
		f.contracts.EXPECT().List(ctx, gomock.Any()).Return([]*queries.ContractListItem{}, 0, nil)

		page, err := f.q.List(ctx, queries.ContractFilter{Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.Zero(t, page.TotalPages)
		assert.Empty(t, page.Items)
	})

	t.Run("error: invalid paging and status", func(t *testing.T) {
		f := newContractQueries(t)

		_, err := f.q.List(ctx, queries.ContractFilter{Page: -1})
		assert.True(t, errs.Is(err, queries.ErrInvalidPage))

		_, err = f.q.List(ctx, queries.ContractFilter{Page: queries.MaxPage + 1})
		assert.True(t, errs.Is(err, queries.ErrInvalidPage))

		_, err = f.q.List(ctx, queries.ContractFilter{Page: math.MaxInt, PageSize: queries.MaxPageSize})
		assert.True(t, errs.Is(err, queries.ErrInvalidPage))

		_, err = f.q.List(ctx, queries.ContractFilter{Page: 1, PageSize: queries.MaxPageSize + 1})
		assert.True(t, errs.Is(err, queries.ErrInvalidPageSize))

		_, err = f.q.List(ctx, queries.ContractFilter{Status: ptr.To("archived")})
		assert.ErrorIs(t, err, contract.ErrInvalidStatus)
	})
}

func TestContractQueries_Quote(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	eqA, eqB := uuid.New(), uuid.New()

	t.Run("success: prices every line without saving", func(t *testing.T) {
		f := newContractQueries(t)
		f.equipment.EXPECT().FindByID(ctx, eqA).Return(&queries.EquipmentView{ID: eqA, Name: "Excavator"}, nil)
		f.equipment.EXPECT().FindByID(ctx, eqB).Return(&queries.EquipmentView{ID: eqB, Name: "Scaffold"}, nil)

		calc, err := f.q.Quote(ctx, queries.QuoteInput{
			StartDate: start,
			EndDate:   end,
			Items: []queries.QuoteLine{
				{EquipmentID: eqA, Quantity: 2, DailyRate: decimal.RequireFromString("80.00")},
				{EquipmentID: eqB, Quantity: 5, DailyRate: decimal.RequireFromString("2.50")},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calc.TotalDays)
		assert.True(t, decimal.RequireFromString("517.50").Equal(calc.TotalValue), "got %s", calc.TotalValue)
		require.Len(t, calc.Items, 2)
		assert.Equal(t, "Scaffold", calc.Items[1].EquipmentName)
		assert.True(t, decimal.RequireFromString("37.50").Equal(calc.Items[1].Subtotal))
	})

	t.Run("error: unknown equipment", func(t *testing.T) {
		f := newContractQueries(t)
		f.equipment.EXPECT().FindByID(ctx, eqA).Return(nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound))

		_, err := f.q.Quote(ctx, queries.QuoteInput{
			StartDate: start,
			EndDate:   end,
			Items:     []queries.QuoteLine{{EquipmentID: eqA, Quantity: 1}},
		})

		assert.True(t, errs.Is(err, queries.ErrEquipmentNotFound))
	})

	t.Run("error: invalid input never reaches the store", func(t *testing.T) {
		f := newContractQueries(t)

		_, err := f.q.Quote(ctx, queries.QuoteInput{StartDate: end, EndDate: start, Items: []queries.QuoteLine{{EquipmentID: eqA, Quantity: 1}}})
		assert.ErrorIs(t, err, contract.ErrInvalidDateRange)

		_, err = f.q.Quote(ctx, queries.QuoteInput{StartDate: start, EndDate: end})
		assert.ErrorIs(t, err, contract.ErrNoItems)

		_, err = f.q.Quote(ctx, queries.QuoteInput{StartDate: start, EndDate: end, Items: []queries.QuoteLine{{EquipmentID: eqA, Quantity: 0}}})
		assert.ErrorIs(t, err, contract.ErrInvalidQuantity)

		_, err = f.q.Quote(ctx, queries.QuoteInput{StartDate: start, EndDate: end, Items: []queries.QuoteLine{
			{EquipmentID: eqA, Quantity: 1, DailyRate: decimal.RequireFromString("0.005")},
		}})
		assert.ErrorIs(t, err, contract.ErrDailyRatePrecision)
	})

	t.Run("error: total does not fit the amount column", func(t *testing.T) {
		f := newContractQueries(t)
		f.equipment.EXPECT().FindByID(ctx, eqA).Return(&queries.EquipmentView{ID: eqA, Name: "Excavator"}, nil)

		_, err := f.q.Quote(ctx, queries.QuoteInput{
			StartDate: start,
			EndDate:   start.AddDate(1, 0, 0),
			Items: []queries.QuoteLine{
				{EquipmentID: eqA, Quantity: contract.MaxQuantity, DailyRate: decimal.RequireFromString("1000.00")},
			},
		})

		assert.ErrorIs(t, err, contract.ErrAmountTooLarge)
	})

	t.Run("error: store failure is passed through", func(t *testing.T) {
		f := newContractQueries(t)
		boom := errors.New("connection reset")
		f.equipment.EXPECT().FindByID(ctx, eqA).Return(nil, boom)

		_, err := f.q.Quote(ctx, queries.QuoteInput{StartDate: start, EndDate: end, Items: []queries.QuoteLine{{EquipmentID: eqA, Quantity: 1}}})
		assert.ErrorIs(t, err, boom)
	})
}
