package vehicle

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

// Execute hard-deletes the owned record. No soft delete, no recovery.
func (uc *Delete) Execute(ctx context.Context, ownerID, id uint) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "vehicle_deleted",
		Entity:   "vehicle",
		EntityID: &id,
	})

	return nil
}
