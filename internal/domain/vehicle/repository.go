package vehicle

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

// Repository is the owner-scoped vehicle store. Every query carries the owner
// id; there is no way to reach another user's records through it.
// Implementations translate store faults into the apperr taxonomy.
type Repository interface {
	Create(ctx context.Context, v *models.Vehicle) error

	// FindByID returns the owned record with its owner association loaded,
	// or a NotFound error.
	FindByID(ctx context.Context, ownerID, id uint) (*models.Vehicle, error)

	// List returns the owner's vehicles newest-first. An empty status means
	// no filter.
	List(ctx context.Context, ownerID uint, status Status) ([]models.Vehicle, error)

	// PlateExists reports whether the owner already has a vehicle with the
	// normalized plate, ignoring the record with excludeID (0 to exclude
	// nothing).
	PlateExists(ctx context.Context, ownerID uint, plate string, excludeID uint) (bool, error)

	Update(ctx context.Context, v *models.Vehicle) error

	Delete(ctx context.Context, ownerID, id uint) error
}
