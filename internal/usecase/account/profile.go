package account

import (
	"context"

	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/account"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type Profile struct {
	users domain.Repository
}

func NewProfile(users domain.Repository) *Profile {
	return &Profile{users: users}
}

// Execute fetches the caller's own record, hash excluded. A NotFound here
// means the account was deleted after the token was issued.
func (uc *Profile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	return uc.users.FindByID(ctx, userID)
}
