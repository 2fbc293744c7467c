package account

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/account"
)

type Delete struct {
	users domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(users domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{users: users, audit: audit}
}

// Execute removes the account. Owned vehicles are removed by the store's
// cascade constraint; there is no soft delete and no recovery path.
func (uc *Delete) Execute(ctx context.Context, userID uint) error {
	if err := uc.users.Delete(ctx, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "user_deleted",
		Entity: "user",
	})

	return nil
}
