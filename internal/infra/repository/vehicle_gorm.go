package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/vehicle"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type VehicleGormRepository struct {
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

// ownerProjection loads the owning user with only the fields responses expose.
func ownerProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "email")
}

func (r *VehicleGormRepository) Create(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		// The composite unique index on (user_id, plate) is the authority;
		// a concurrent duplicate create lands here, not in the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Vehicle with this plate already exists")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (r *VehicleGormRepository) FindByID(ctx context.Context, ownerID, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Preload("User", ownerProjection).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&v).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, apperr.Internal(err)
	}
	return &v, nil
}

func (r *VehicleGormRepository) List(ctx context.Context, ownerID uint, status domain.Status) ([]models.Vehicle, error) {
	q := r.db.WithContext(ctx).
		Preload("User", ownerProjection).
		Where("user_id = ?", ownerID)

	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var vehicles []models.Vehicle
	if err := q.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return vehicles, nil
}

func (r *VehicleGormRepository) PlateExists(ctx context.Context, ownerID uint, plate string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("user_id = ? AND plate = ?", ownerID, plate)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

func (r *VehicleGormRepository) Update(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("You already have a vehicle with this plate")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (r *VehicleGormRepository) Delete(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Vehicle{})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Vehicle not found")
	}
	return nil
}
