package services

import (
	"errors"
	"time"

	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

// Masa sewa default: satu tahun dari tanggal masuk, tidak configurable.
const leaseTermDays = 365

// Deposit = 2x sewa bulanan
const depositMultiplier = 2

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Submit membuat booking baru berstatus pending. Status unit tidak
// berubah di sini; unit baru menjadi occupied saat approval.
func (bs *BookingService) Submit(userID, unitID uint, moveInDate time.Time) (*models.Booking, error) {
	var unit models.Unit
	if err := bs.DB.First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("unit not found")
		}
		return nil, err
	}

	if unit.Status != models.UnitStatusAvailable {
		return nil, utils.NewConflictError("unit is not available")
	}

	booking := models.Booking{
		UserID:              userID,
		UnitID:              unitID,
		RequestedMoveInDate: moveInDate,
		Status:              models.BookingStatusPending,
	}

	if err := bs.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// Approve menjalankan tiga mutasi sebagai satu transaksi:
// booking -> approved, lease dibuat, unit -> occupied. Flip status
// memakai guarded UPDATE (WHERE status = 'pending'); kalau nol baris
// berubah berarti request lain sudah memproses booking ini dan seluruh
// transaksi dibatalkan tanpa jejak.
func (bs *BookingService) Approve(bookingID uint) (*models.Booking, *models.Lease, error) {
	var booking models.Booking
	var lease models.Lease

	err := bs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("booking not found")
			}
			return err
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingStatusPending).
			Updates(map[string]interface{}{
				"status":     models.BookingStatusApproved,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewConflictError("booking already processed")
		}

		var unit models.Unit
		if err := tx.First(&unit, booking.UnitID).Error; err != nil {
			return err
		}

		lease = models.Lease{
			BookingID:       booking.ID,
			UserID:          booking.UserID,
			UnitID:          booking.UnitID,
			StartDate:       booking.RequestedMoveInDate,
			EndDate:         booking.RequestedMoveInDate.AddDate(0, 0, leaseTermDays),
			MonthlyRent:     unit.RentAmount,
			SecurityDeposit: unit.RentAmount * depositMultiplier,
			Status:          models.LeaseStatusActive,
		}
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Unit{}).
			Where("id = ?", unit.ID).
			Update("status", models.UnitStatusOccupied).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Baca ulang supaya updated_at hasil commit ikut terbawa
	if err := bs.DB.First(&booking, bookingID).Error; err != nil {
		return nil, nil, err
	}

	return &booking, &lease, nil
}

// Reject menutup booking tanpa efek samping ke lease maupun unit.
func (bs *BookingService) Reject(bookingID uint, comments string) (*models.Booking, error) {
	var booking models.Booking

	err := bs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("booking not found")
			}
			return err
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingStatusPending).
			Updates(map[string]interface{}{
				"status":         models.BookingStatusRejected,
				"admin_comments": comments,
				"updated_at":     time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewConflictError("booking already processed")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := bs.DB.First(&booking, bookingID).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}
