package readstore

import (
	"context"

	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view, err := toAuthorizedUserView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err)
	}
	return view, nil
}

func toAuthorizedUserView(row sqlc.Users) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	u := user.ReconstructUser(row.ID, email, row.Name, role, row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))

	perms := u.Permissions()
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = string(p)
	}

	return &queries.AuthorizedUserView{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		Name:        u.Name(),
		Role:        u.Role().String(),
		IsActive:    u.IsActive(),
		Permissions: names,
	}, nil
}
