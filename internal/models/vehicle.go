package models

import "time"

type Vehicle struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;uniqueIndex:idx_vehicles_owner_plate;not null" json:"user_id"`
	User   User `json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Stored upper-cased, exactly 7 characters. Uniqueness is scoped to the
	// owner: the same plate string may exist under two different users.
	Plate string `gorm:"size:7;index;uniqueIndex:idx_vehicles_owner_plate;not null" json:"plate"`

	Status string `gorm:"size:10;index;not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
