package models

import "time"

type Tower struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Address     string    `gorm:"type:varchar(255);not null" json:"address"`
	TotalFloors int       `json:"total_floors"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	// UnitCount diisi oleh controller, bukan kolom database
	UnitCount int64  `gorm:"-" json:"unit_count"`
	Units     []Unit `gorm:"foreignKey:TowerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"units,omitempty"`
}
