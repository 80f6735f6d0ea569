package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type TowerController struct {
	DB *gorm.DB
}

func NewTowerController(db *gorm.DB) *TowerController {
	return &TowerController{DB: db}
}

// GetAllTowers -> list tower (public)
func (tc *TowerController) GetAllTowers(c *gin.Context) {
	var towers []models.Tower
	if err := tc.DB.Find(&towers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range towers {
		tc.DB.Model(&models.Unit{}).Where("tower_id = ?", towers[i].ID).Count(&towers[i].UnitCount)
	}

	utils.RespondJSON(c, http.StatusOK, "List of towers", towers)
}

// GetTowerByID -> detail satu tower (public)
func (tc *TowerController) GetTowerByID(c *gin.Context) {
	towerID := c.Param("tower_id")

	var tower models.Tower
	if err := tc.DB.First(&tower, towerID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("tower not found"))
		return
	}
	tc.DB.Model(&models.Unit{}).Where("tower_id = ?", tower.ID).Count(&tower.UnitCount)

	utils.RespondJSON(c, http.StatusOK, "Tower detail", tower)
}

// CreateTower -> tambah tower baru (admin)
func (tc *TowerController) CreateTower(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Address     string `json:"address" binding:"required"`
		TotalFloors int    `json:"total_floors"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tower := models.Tower{
		Name:        req.Name,
		Address:     req.Address,
		TotalFloors: req.TotalFloors,
		Description: req.Description,
	}

	if err := tc.DB.Create(&tower).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New tower created: %s", tower.Name)
	utils.RespondJSON(c, http.StatusCreated, "Tower created successfully", tower)
}

// UpdateTower -> partial update; hanya field yang dikirim yang berubah
func (tc *TowerController) UpdateTower(c *gin.Context) {
	towerID := c.Param("tower_id")

	var tower models.Tower
	if err := tc.DB.First(&tower, towerID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("tower not found"))
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Address     *string `json:"address"`
		TotalFloors *int    `json:"total_floors"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		tower.Name = *req.Name
	}
	if req.Address != nil {
		tower.Address = *req.Address
	}
	if req.TotalFloors != nil {
		tower.TotalFloors = *req.TotalFloors
	}
	if req.Description != nil {
		tower.Description = *req.Description
	}

	if err := tc.DB.Save(&tower).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tower updated successfully", tower)
}

// DeleteTower -> hard delete, ditolak selama tower masih punya unit.
// Guard eksplisit di sini, bukan menunggu constraint database bocor
// sebagai error 500.
func (tc *TowerController) DeleteTower(c *gin.Context) {
	towerID := c.Param("tower_id")

	var tower models.Tower
	if err := tc.DB.First(&tower, towerID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("tower not found"))
		return
	}

	var unitCount int64
	if err := tc.DB.Model(&models.Unit{}).Where("tower_id = ?", tower.ID).Count(&unitCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if unitCount > 0 {
		utils.RespondAppError(c, utils.NewConflictError("cannot delete tower as it has associated units, delete all units first"))
		return
	}

	if err := tc.DB.Delete(&tower).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Tower %d deleted", tower.ID)
	utils.RespondJSON(c, http.StatusOK, "Tower deleted successfully", gin.H{
		"id": tower.ID,
	})
}
