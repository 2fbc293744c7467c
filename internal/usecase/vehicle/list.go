package vehicle

import (
	"context"

	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute lists the owner's vehicles newest-first. An unrecognized status
// filter is ignored rather than rejected.
func (uc *List) Execute(ctx context.Context, ownerID uint, status string) ([]models.Vehicle, error) {
	var filter domain.Status
	if parsed, ok := domain.ParseStatus(status); ok {
		filter = parsed
	}

	return uc.repo.List(ctx, ownerID, filter)
}
