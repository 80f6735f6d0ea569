package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/middlewares"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type LeaseController struct {
	DB *gorm.DB
}

func NewLeaseController(db *gorm.DB) *LeaseController {
	return &LeaseController{DB: db}
}

// GetAllLeases -> admin melihat semua (filter status opsional),
// tenant hanya melihat lease miliknya
func (lc *LeaseController) GetAllLeases(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	query := lc.DB.Preload("Unit").Preload("Unit.Tower").Preload("User").Order("created_at desc")

	if middlewares.IsAdmin(lc.DB, userID) {
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	} else {
		query = query.Where("user_id = ?", userID)
	}

	var leases []models.Lease
	if err := query.Find(&leases).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of leases", leases)
}

// GetLeaseByID -> detail lease, tenant hanya boleh miliknya
func (lc *LeaseController) GetLeaseByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	leaseID := c.Param("lease_id")

	var lease models.Lease
	if err := lc.DB.Preload("Unit").Preload("Unit.Tower").Preload("User").
		First(&lease, leaseID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("lease not found"))
		return
	}

	if lease.UserID != userID && !middlewares.IsAdmin(lc.DB, userID) {
		utils.RespondAppError(c, utils.NewForbiddenError("you do not have access to this lease"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Lease detail", lease)
}

// GetLeaseStats -> agregat jumlah lease untuk dashboard admin
func (lc *LeaseController) GetLeaseStats(c *gin.Context) {
	var stats struct {
		TotalLeases   int64 `json:"total_leases"`
		ActiveLeases  int64 `json:"active_leases"`
		ExpiredLeases int64 `json:"expired_leases"`
	}

	lc.DB.Model(&models.Lease{}).Count(&stats.TotalLeases)
	lc.DB.Model(&models.Lease{}).Where("status = ?", models.LeaseStatusActive).Count(&stats.ActiveLeases)
	lc.DB.Model(&models.Lease{}).Where("status = ?", models.LeaseStatusExpired).Count(&stats.ExpiredLeases)

	utils.RespondJSON(c, http.StatusOK, "Lease statistics", stats)
}
