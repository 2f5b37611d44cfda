//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"rental-contracts/internal/infra"
	"rental-contracts/internal/infra/readstore"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	readstoremock "rental-contracts/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPersonReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: person found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPersonReadQueries(ctrl)
		mockQueries.EXPECT().GetPersonByID(ctx, gomock.Any(), id).
			Return(sqlc.GetPersonByIDRow{ID: id, Name: "Acme Builders", IsActive: true}, nil)

		person, err := readstore.NewPersonReadStore(mockQueries, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Acme Builders", person.Name)
		assert.True(t, person.IsActive)
	})

	t.Run("error: person not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPersonReadQueries(ctrl)
		mockQueries.EXPECT().GetPersonByID(ctx, gomock.Any(), id).Return(sqlc.GetPersonByIDRow{}, pgx.ErrNoRows)

		person, err := readstore.NewPersonReadStore(mockQueries, nil).FindByID(ctx, id)

		assert.Nil(t, person)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestEquipmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: equipment found with its daily rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
		mockQueries.EXPECT().GetEquipmentByID(ctx, gomock.Any(), id).Return(sqlc.GetEquipmentByIDRow{
			ID:        id,
			Name:      "Excavator",
			DailyRate: pgconv.DecimalToNumeric(decimal.RequireFromString("150.00")),
			IsActive:  true,
		}, nil)

		eq, err := readstore.NewEquipmentReadStore(mockQueries, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Excavator", eq.Name)
		assert.True(t, decimal.RequireFromString("150").Equal(eq.DailyRate))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
		mockQueries.EXPECT().GetEquipmentByID(ctx, gomock.Any(), id).Return(sqlc.GetEquipmentByIDRow{}, errDBConnectionLost)

		_, err := readstore.NewEquipmentReadStore(mockQueries, nil).FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
