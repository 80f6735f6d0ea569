package models

import "time"

const (
	UnitStatusAvailable   = "available"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
)

type Unit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TowerID     uint      `gorm:"not null;index" json:"tower_id"`
	Tower       *Tower    `gorm:"foreignKey:TowerID" json:"tower,omitempty"`
	UnitNumber  string    `gorm:"type:varchar(20);not null" json:"unit_number"`
	Floor       int       `json:"floor"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	SizeSqft    int       `json:"size_sqft"`
	RentAmount  float64   `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
