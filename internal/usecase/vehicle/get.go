package vehicle

import (
	"context"

	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

// Execute returns the owned record or NotFound. A vehicle owned by someone
// else produces the same NotFound; existence is never leaked.
func (uc *Get) Execute(ctx context.Context, ownerID, id uint) (*models.Vehicle, error) {
	return uc.repo.FindByID(ctx, ownerID, id)
}
