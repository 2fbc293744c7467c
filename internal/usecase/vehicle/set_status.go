package vehicle

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(repo domain.Repository, audit *audit.Dispatcher) *SetStatus {
	return &SetStatus{repo: repo, audit: audit}
}

// Execute sets the status to the explicit target value. The caller computes
// the desired next state; there are no toggle semantics here. Name and plate
// are untouched.
func (uc *SetStatus) Execute(ctx context.Context, ownerID, id uint, status string) (*models.Vehicle, error) {
	target, ok := domain.ParseStatus(status)
	if !ok {
		return nil, apperr.Validation(`Status must be either "active" or "inactive"`)
	}

	v, err := uc.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	v.Status = string(target)
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	updated, err := uc.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "vehicle_status_changed",
		Entity:   "vehicle",
		EntityID: &updated.ID,
		Metadata: map[string]string{"status": updated.Status},
	})

	return updated, nil
}
