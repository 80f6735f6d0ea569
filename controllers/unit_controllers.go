package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

// GetAllUnits -> list unit dengan filter opsional (public)
func (uc *UnitController) GetAllUnits(c *gin.Context) {
	query := uc.DB.Preload("Tower")

	if towerID := c.Query("tower_id"); towerID != "" {
		query = query.Where("tower_id = ?", towerID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if bedrooms := c.Query("bedrooms"); bedrooms != "" {
		query = query.Where("bedrooms = ?", bedrooms)
	}

	var units []models.Unit
	if err := query.Find(&units).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of units", units)
}

// GetUnitByID -> detail satu unit (public)
func (uc *UnitController) GetUnitByID(c *gin.Context) {
	unitID := c.Param("unit_id")

	var unit models.Unit
	if err := uc.DB.Preload("Tower").First(&unit, unitID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("unit not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unit detail", unit)
}

// CreateUnit -> tambah unit baru di sebuah tower (admin)
func (uc *UnitController) CreateUnit(c *gin.Context) {
	var req struct {
		TowerID     uint    `json:"tower_id" binding:"required"`
		UnitNumber  string  `json:"unit_number" binding:"required"`
		Floor       int     `json:"floor"`
		Bedrooms    int     `json:"bedrooms"`
		Bathrooms   int     `json:"bathrooms"`
		SizeSqft    int     `json:"size_sqft"`
		RentAmount  float64 `json:"rent_amount" binding:"required"`
		Status      string  `json:"status"`
		Description string  `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var tower models.Tower
	if err := uc.DB.First(&tower, req.TowerID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("tower not found"))
		return
	}

	unit := models.Unit{
		TowerID:     req.TowerID,
		UnitNumber:  req.UnitNumber,
		Floor:       req.Floor,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SizeSqft:    req.SizeSqft,
		RentAmount:  req.RentAmount,
		Status:      models.UnitStatusAvailable,
		Description: req.Description,
	}
	if req.Status != "" {
		unit.Status = req.Status
	}

	if err := uc.DB.Create(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New unit created: %s (tower=%d)", unit.UnitNumber, unit.TowerID)
	utils.RespondJSON(c, http.StatusCreated, "Unit created successfully", unit)
}

// UpdateUnit -> partial update (admin). Ini satu-satunya jalur selain
// approval booking yang boleh mengubah status unit.
func (uc *UnitController) UpdateUnit(c *gin.Context) {
	unitID := c.Param("unit_id")

	var unit models.Unit
	if err := uc.DB.First(&unit, unitID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("unit not found"))
		return
	}

	var req struct {
		UnitNumber  *string  `json:"unit_number"`
		Floor       *int     `json:"floor"`
		Bedrooms    *int     `json:"bedrooms"`
		Bathrooms   *int     `json:"bathrooms"`
		SizeSqft    *int     `json:"size_sqft"`
		RentAmount  *float64 `json:"rent_amount"`
		Status      *string  `json:"status"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.UnitNumber != nil {
		unit.UnitNumber = *req.UnitNumber
	}
	if req.Floor != nil {
		unit.Floor = *req.Floor
	}
	if req.Bedrooms != nil {
		unit.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		unit.Bathrooms = *req.Bathrooms
	}
	if req.SizeSqft != nil {
		unit.SizeSqft = *req.SizeSqft
	}
	if req.RentAmount != nil {
		unit.RentAmount = *req.RentAmount
	}
	if req.Status != nil {
		unit.Status = *req.Status
	}
	if req.Description != nil {
		unit.Description = *req.Description
	}

	if err := uc.DB.Save(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unit updated successfully", unit)
}

// DeleteUnit -> hard delete (admin)
func (uc *UnitController) DeleteUnit(c *gin.Context) {
	unitID := c.Param("unit_id")

	var unit models.Unit
	if err := uc.DB.First(&unit, unitID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("unit not found"))
		return
	}

	if err := uc.DB.Delete(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Unit %d deleted", unit.ID)
	utils.RespondJSON(c, http.StatusOK, "Unit deleted successfully", gin.H{
		"id": unit.ID,
	})
}
