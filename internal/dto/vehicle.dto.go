package dto

import (
	"time"

	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

// OwnerDTO is the projection of the owning user that vehicle responses carry.
type OwnerDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type VehicleDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate"`
	Status    string    `json:"status"`
	UserID    uint      `json:"user_id"`
	User      OwnerDTO  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewVehicleDTO(v *models.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     v.ID,
		Name:   v.Name,
		Plate:  v.Plate,
		Status: v.Status,
		UserID: v.UserID,
		User: OwnerDTO{
			ID:    v.User.ID,
			Email: v.User.Email,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func NewVehicleList(vehicles []models.Vehicle) []VehicleDTO {
	out := make([]VehicleDTO, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, NewVehicleDTO(&vehicles[i]))
	}
	return out
}
