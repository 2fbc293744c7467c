package vehicle

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
	"github.com/BruksfildServices01/fleet-manager/internal/validators"
)

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

// UpdateInput carries only the fields the caller supplied; nil means leave
// that field alone.
type UpdateInput struct {
	Name   *string
	Plate  *string
	Status *string
}

func (uc *Update) Execute(ctx context.Context, ownerID, id uint, in UpdateInput) (*models.Vehicle, error) {
	v, err := uc.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := validators.ValidateName(*in.Name)
		if err != nil {
			return nil, err
		}
		v.Name = name
	}

	if in.Plate != nil {
		plate := validators.NormalizePlate(*in.Plate)
		if err := validators.ValidatePlate(plate); err != nil {
			return nil, err
		}

		// Only re-check uniqueness when the plate actually changes.
		if plate != v.Plate {
			exists, err := uc.repo.PlateExists(ctx, ownerID, plate, v.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperr.Conflict("You already have a vehicle with this plate")
			}
		}
		v.Plate = plate
	}

	if in.Status != nil {
		status, ok := domain.ParseStatus(*in.Status)
		if !ok {
			return nil, apperr.Validation(`Status must be either "active" or "inactive"`)
		}
		v.Status = string(status)
	}

	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	// Re-fetch after the write so the response reflects store state.
	updated, err := uc.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "vehicle_updated",
		Entity:   "vehicle",
		EntityID: &updated.ID,
	})

	return updated, nil
}
