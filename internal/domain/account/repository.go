package account

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

// Repository is the credential store. Implementations translate store faults
// into the apperr taxonomy.
type Repository interface {
	Create(ctx context.Context, u *models.User) error

	// FindByEmail returns the full record, password hash included; it exists
	// for credential checks only.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns a projection without the password hash. This is what
	// the auth gate and profile reads use.
	FindByID(ctx context.Context, id uint) (*models.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes the user; owned vehicles go with it via the store's
	// cascade constraint.
	Delete(ctx context.Context, id uint) error
}
