package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/middlewares"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/services"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type BookingController struct {
	DB      *gorm.DB
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:      db,
		Service: services.NewBookingService(db),
	}
}

// CreateBooking -> tenant mengajukan booking untuk sebuah unit
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		UnitID              uint   `json:"unit_id" binding:"required"`
		RequestedMoveInDate string `json:"requested_move_in_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	moveIn, err := time.Parse("2006-01-02", req.RequestedMoveInDate)
	if err != nil {
		utils.RespondAppError(c, utils.NewValidationError("requested_move_in_date must be YYYY-MM-DD"))
		return
	}

	booking, err := bc.Service.Submit(userID, req.UnitID, moveIn)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d submitted by user %d for unit %d", booking.ID, userID, booking.UnitID)
	utils.RespondJSON(c, http.StatusCreated, "Booking request submitted successfully", booking)
}

// GetAllBookings -> admin melihat semua (dengan filter status),
// tenant hanya melihat miliknya
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	query := bc.DB.Preload("Unit").Preload("Unit.Tower").Preload("User").Order("created_at desc")

	if middlewares.IsAdmin(bc.DB, userID) {
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	} else {
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetBookingByID -> detail booking, tenant hanya boleh miliknya
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	bookingID := c.Param("booking_id")

	var booking models.Booking
	if err := bc.DB.Preload("Unit").Preload("Unit.Tower").Preload("User").Preload("Lease").
		First(&booking, bookingID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("booking not found"))
		return
	}

	if booking.UserID != userID && !middlewares.IsAdmin(bc.DB, userID) {
		utils.RespondAppError(c, utils.NewForbiddenError("you do not have access to this booking"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

// ApproveBooking -> admin menyetujui booking; lease dibuat dan unit
// menjadi occupied dalam satu transaksi (lihat services.BookingService)
func (bc *BookingController) ApproveBooking(c *gin.Context) {
	bookingID, ok := paramUint(c, "booking_id")
	if !ok {
		utils.RespondAppError(c, utils.NewValidationError("invalid booking id"))
		return
	}

	booking, lease, err := bc.Service.Approve(bookingID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d approved, lease %d created, unit %d occupied",
		booking.ID, lease.ID, booking.UnitID)
	utils.RespondJSON(c, http.StatusOK, "Booking approved successfully", gin.H{
		"booking": booking,
		"lease":   lease,
	})
}

// RejectBooking -> admin menolak booking, tanpa efek ke lease/unit
func (bc *BookingController) RejectBooking(c *gin.Context) {
	bookingID, ok := paramUint(c, "booking_id")
	if !ok {
		utils.RespondAppError(c, utils.NewValidationError("invalid booking id"))
		return
	}

	var req struct {
		Comments string `json:"comments"`
	}
	// Body boleh kosong
	_ = c.ShouldBindJSON(&req)

	booking, err := bc.Service.Reject(bookingID, req.Comments)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d rejected", booking.ID)
	utils.RespondJSON(c, http.StatusOK, "Booking rejected", booking)
}
