package vehicle

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
	"github.com/BruksfildServices01/fleet-manager/internal/validators"
)

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

type CreateInput struct {
	Name   string
	Plate  string
	Status string
}

func (uc *Create) Execute(ctx context.Context, ownerID uint, in CreateInput) (*models.Vehicle, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Plate) == "" {
		return nil, apperr.Validation("Name and plate are required")
	}

	name, err := validators.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}

	plate := validators.NormalizePlate(in.Plate)
	if err := validators.ValidatePlate(plate); err != nil {
		return nil, err
	}

	status := domain.DefaultStatus()
	if in.Status != "" {
		parsed, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, apperr.Validation(`Status must be either "active" or "inactive"`)
		}
		status = parsed
	}

	exists, err := uc.repo.PlateExists(ctx, ownerID, plate, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Vehicle with this plate already exists")
	}

	v := &models.Vehicle{
		UserID: ownerID,
		Name:   name,
		Plate:  plate,
		Status: string(status),
	}

	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	// Re-read so the caller gets the persisted record with its owner
	// projection, not the insert payload.
	created, err := uc.repo.FindByID(ctx, ownerID, v.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "vehicle_created",
		Entity:   "vehicle",
		EntityID: &created.ID,
		Metadata: map[string]string{"plate": created.Plate},
	})

	return created, nil
}
