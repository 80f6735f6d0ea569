package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is a manually recorded payment against a lease. There is no
// gateway behind it; rows are written by an admin and never reconciled.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LeaseID       uint      `gorm:"not null;index" json:"lease_id"`
	Lease         *Lease    `gorm:"foreignKey:LeaseID" json:"lease,omitempty"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	PaymentMethod string    `gorm:"type:varchar(50);not null;default:'cash'" json:"payment_method"`
	ReferenceID   string    `gorm:"type:varchar(64)" json:"reference_id"`
	Status        string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
