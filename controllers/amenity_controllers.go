package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

type AmenityController struct {
	DB *gorm.DB
}

func NewAmenityController(db *gorm.DB) *AmenityController {
	return &AmenityController{DB: db}
}

// GetAllAmenities -> list amenity aktif (public)
func (ac *AmenityController) GetAllAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := ac.DB.Where("is_active = ?", true).Find(&amenities).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of amenities", amenities)
}

// GetAmenityByID -> detail satu amenity (public)
func (ac *AmenityController) GetAmenityByID(c *gin.Context) {
	amenityID := c.Param("amenity_id")

	var amenity models.Amenity
	if err := ac.DB.First(&amenity, amenityID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("amenity not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Amenity detail", amenity)
}

// CreateAmenity -> tambah amenity baru (admin)
func (ac *AmenityController) CreateAmenity(c *gin.Context) {
	var req struct {
		Name              string `json:"name" binding:"required"`
		Description       string `json:"description"`
		AvailabilityHours string `json:"availability_hours"`
		IsActive          *bool  `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	amenity := models.Amenity{
		Name:              req.Name,
		Description:       req.Description,
		AvailabilityHours: req.AvailabilityHours,
		IsActive:          true,
	}
	if req.IsActive != nil {
		amenity.IsActive = *req.IsActive
	}

	if err := ac.DB.Create(&amenity).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New amenity created: %s", amenity.Name)
	utils.RespondJSON(c, http.StatusCreated, "Amenity created successfully", amenity)
}

// UpdateAmenity -> partial update (admin)
func (ac *AmenityController) UpdateAmenity(c *gin.Context) {
	amenityID := c.Param("amenity_id")

	var amenity models.Amenity
	if err := ac.DB.First(&amenity, amenityID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("amenity not found"))
		return
	}

	var req struct {
		Name              *string `json:"name"`
		Description       *string `json:"description"`
		AvailabilityHours *string `json:"availability_hours"`
		IsActive          *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		amenity.Name = *req.Name
	}
	if req.Description != nil {
		amenity.Description = *req.Description
	}
	if req.AvailabilityHours != nil {
		amenity.AvailabilityHours = *req.AvailabilityHours
	}
	if req.IsActive != nil {
		amenity.IsActive = *req.IsActive
	}

	if err := ac.DB.Save(&amenity).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Amenity updated successfully", amenity)
}

// DeleteAmenity -> soft delete: is_active dimatikan dan amenity hilang
// dari listing publik, barisnya tetap ada.
func (ac *AmenityController) DeleteAmenity(c *gin.Context) {
	amenityID := c.Param("amenity_id")

	var amenity models.Amenity
	if err := ac.DB.First(&amenity, amenityID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("amenity not found"))
		return
	}

	if !amenity.IsActive {
		utils.RespondAppError(c, utils.NewConflictError("amenity is already inactive"))
		return
	}

	if err := ac.DB.Model(&amenity).Update("is_active", false).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Amenity %d deactivated", amenity.ID)
	utils.RespondJSON(c, http.StatusOK, "Amenity deleted successfully", gin.H{
		"id": amenity.ID,
	})
}
