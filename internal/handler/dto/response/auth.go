package response

import (
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	Permissions []string  `json:"permissions"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	resp := &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		Name:        v.Name,
		Role:        v.Role,
		IsActive:    v.IsActive,
		Permissions: v.Permissions,
	}
	if resp.Permissions == nil {
		resp.Permissions = []string{}
	}
	return resp
}
