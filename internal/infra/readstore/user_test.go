//go:build unit

package readstore

import (
	"context"
	"testing"

	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().WithRole("admin").BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantUser   bool
		wantPerms  int
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			id:         testUser.ID,
			mockReturn: testUser,
			wantUser:   true,
			wantPerms:  5,
		},
		{
			name:       "success - inactive user is returned for the caller to reject",
			id:         inactiveUser.ID,
			mockReturn: inactiveUser,
			wantUser:   true,
		},
		{
			name:       "stored row with unknown role",
			id:         testUser.ID,
			mockReturn: builder.NewUserBuilder().WithRole("superuser").BuildInfra(),
			wantKind:   infra.KindDBFailure,
		},
		{
			name:       "user not found",
			id:         uuid.New(),
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			store := NewUserReadStore(mockQueries, nil)
			ctx := context.Background()

			mockQueries.On("FindUserByID", ctx, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			view, err := store.FindByID(ctx, tt.id)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, view) {
					assert.Equal(t, tt.mockReturn.ID, view.ID)
					assert.Equal(t, tt.mockReturn.Email, view.Email)
					assert.Equal(t, tt.mockReturn.Role, view.Role)
					assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
					assert.Len(t, view.Permissions, tt.wantPerms)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
