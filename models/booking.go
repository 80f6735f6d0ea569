package models

import "time"

const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

type Booking struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	User                *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	UnitID              uint      `gorm:"not null;index" json:"unit_id"`
	Unit                *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	RequestedMoveInDate time.Time `gorm:"not null" json:"requested_move_in_date"`
	Status              string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AdminComments       string    `gorm:"type:text" json:"admin_comments"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
	Lease               *Lease    `gorm:"foreignKey:BookingID" json:"lease,omitempty"`
}
