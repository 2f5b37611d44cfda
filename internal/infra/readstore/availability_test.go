//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	"rental-contracts/internal/infra/readstore"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	readstoremock "rental-contracts/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityReadStore_ReservingPeriods(t *testing.T) {
	ctx := context.Background()
	equipmentID := uuid.New()
	exclude := uuid.New()
	holder := uuid.New()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success: converts rows to periods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		want := sqlc.ListReservingPeriodsParams{
			EquipmentID: equipmentID,
			FromDate:    pgconv.DateToPgtype(from),
			ExcludeID:   pgconv.UUIDToPgtype(exclude),
		}
		rows := []sqlc.ListReservingPeriodsRow{{
			ID:             holder,
			ContractNumber: "CON-2025-0003",
			StartDate:      pgconv.DateToPgtype(from),
			EndDate:        pgconv.DateToPgtype(from.AddDate(0, 0, 4)),
		}}
		mockQueries.EXPECT().ListReservingPeriods(ctx, gomock.Any(), want).Return(rows, nil)

		periods, err := store.ReservingPeriods(ctx, equipmentID, from, &exclude)

		require.NoError(t, err)
		require.Len(t, periods, 1)
		assert.Equal(t, holder, periods[0].ContractID)
		assert.Equal(t, contract.Number("CON-2025-0003"), periods[0].Number)
		assert.Equal(t, 5, periods[0].Period.Days())
	})

	t.Run("success: no exclusion binds a null id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListReservingPeriods(ctx, gomock.Any(), gomock.Cond(func(p sqlc.ListReservingPeriodsParams) bool {
			return !p.ExcludeID.Valid
		})).Return(nil, nil)

		periods, err := store.ReservingPeriods(ctx, equipmentID, from, nil)

		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListReservingPeriods(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ReservingPeriods(ctx, equipmentID, from, nil)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
