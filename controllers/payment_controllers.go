package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/rental-portal/middlewares"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// CreatePayment -> admin mencatat pembayaran terhadap sebuah lease.
// Tidak ada gateway; ini murni pencatatan manual.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		LeaseID       uint    `json:"lease_id" binding:"required"`
		Amount        float64 `json:"amount" binding:"required"`
		PaymentDate   string  `json:"payment_date" binding:"required"`
		PaymentMethod string  `json:"payment_method"`
		Status        string  `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		utils.RespondAppError(c, utils.NewValidationError("payment_date must be YYYY-MM-DD"))
		return
	}

	var lease models.Lease
	if err := pc.DB.First(&lease, req.LeaseID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("lease not found"))
		return
	}

	payment := models.Payment{
		LeaseID:       req.LeaseID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: "cash",
		ReferenceID:   uuid.NewString(),
		Status:        models.PaymentStatusCompleted,
	}
	if req.PaymentMethod != "" {
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		payment.Status = req.Status
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment %d recorded for lease %d (ref=%s)", payment.ID, payment.LeaseID, payment.ReferenceID)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded successfully", payment)
}

// GetAllPayments -> admin melihat semua (filter lease_id opsional),
// tenant hanya pembayaran atas lease miliknya
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	query := pc.DB.Order("payment_date desc")

	if middlewares.IsAdmin(pc.DB, userID) {
		if leaseID := c.Query("lease_id"); leaseID != "" {
			query = query.Where("lease_id = ?", leaseID)
		}
	} else {
		var leaseIDs []uint
		if err := pc.DB.Model(&models.Lease{}).Where("user_id = ?", userID).
			Pluck("id", &leaseIDs).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		query = query.Where("lease_id IN ?", leaseIDs)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

// GetPaymentByID -> detail pembayaran, tenant hanya boleh miliknya
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	paymentID := c.Param("payment_id")

	var payment models.Payment
	if err := pc.DB.Preload("Lease").First(&payment, paymentID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("payment not found"))
		return
	}

	if payment.Lease != nil && payment.Lease.UserID != userID && !middlewares.IsAdmin(pc.DB, userID) {
		utils.RespondAppError(c, utils.NewForbiddenError("you do not have access to this payment"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}
