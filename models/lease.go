package models

import "time"

const (
	LeaseStatusActive     = "active"
	LeaseStatusExpired    = "expired"
	LeaseStatusTerminated = "terminated"
)

// Lease dibuat satu kali saat booking disetujui; monthly_rent dan
// security_deposit adalah snapshot dari unit pada saat approval.
type Lease struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BookingID       uint      `gorm:"not null;uniqueIndex" json:"booking_id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	UnitID          uint      `gorm:"not null;index" json:"unit_id"`
	Unit            *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	MonthlyRent     float64   `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`
	SecurityDeposit float64   `gorm:"type:decimal(10,2)" json:"security_deposit"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
