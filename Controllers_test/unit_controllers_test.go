package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/rental-portal/models"
)

func seedUnitsFixture(t *testing.T, db *gorm.DB) (models.Tower, models.Tower) {
	t.Helper()

	towerA := models.Tower{Name: "Tower A", Address: "123 Main Street"}
	towerB := models.Tower{Name: "Tower B", Address: "456 Park Avenue"}
	db.Create(&towerA)
	db.Create(&towerB)

	units := []models.Unit{
		{TowerID: towerA.ID, UnitNumber: "A-101", Bedrooms: 1, RentAmount: 1200, Status: models.UnitStatusAvailable},
		{TowerID: towerA.ID, UnitNumber: "A-502", Bedrooms: 2, RentAmount: 1800, Status: models.UnitStatusOccupied},
		{TowerID: towerB.ID, UnitNumber: "B-203", Bedrooms: 2, RentAmount: 1350, Status: models.UnitStatusAvailable},
	}
	for i := range units {
		db.Create(&units[i])
	}
	return towerA, towerB
}

func TestUnitListFilters(t *testing.T) {
	db := newTestDB(t, "unit_filters")
	r := setupRouter(db)

	towerA, _ := seedUnitsFixture(t, db)

	w := performRequest(r, "GET", "/units", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 3)

	w = performRequest(r, "GET", fmt.Sprintf("/units?tower_id=%d", towerA.ID), nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 2)

	w = performRequest(r, "GET", "/units?status=available", nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 2)

	w = performRequest(r, "GET", "/units?bedrooms=2", nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 2)

	w = performRequest(r, "GET", fmt.Sprintf("/units?tower_id=%d&status=available&bedrooms=2", towerA.ID), nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 0)
}

func TestUnitCreateUpdateDelete(t *testing.T) {
	db := newTestDB(t, "unit_crud")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)

	tower := models.Tower{Name: "Tower C", Address: "789 Hill Road"}
	db.Create(&tower)

	w := performRequest(r, "POST", "/units", map[string]interface{}{
		"tower_id":    tower.ID,
		"unit_number": "C-101",
		"bedrooms":    2,
		"bathrooms":   1,
		"size_sqft":   900,
		"rent_amount": 1500.0,
	}, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeResponse(t, w)["data"].(map[string]interface{})
	unitID := int(created["id"].(float64))
	assert.Equal(t, "available", created["status"])

	// Partial update: rent saja
	w = performRequest(r, "PUT", fmt.Sprintf("/units/%d", unitID), map[string]interface{}{
		"rent_amount": 1650.0,
	}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1650.0, updated["rent_amount"])
	assert.Equal(t, "C-101", updated["unit_number"])

	// Admin boleh mengubah status unit langsung
	w = performRequest(r, "PUT", fmt.Sprintf("/units/%d", unitID), map[string]interface{}{
		"status": "maintenance",
	}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maintenance", decodeResponse(t, w)["data"].(map[string]interface{})["status"])

	w = performRequest(r, "DELETE", fmt.Sprintf("/units/%d", unitID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Unit{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUnitCreateUnknownTower(t *testing.T) {
	db := newTestDB(t, "unit_bad_tower")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)

	w := performRequest(r, "POST", "/units", map[string]interface{}{
		"tower_id":    9999,
		"unit_number": "X-1",
		"rent_amount": 1000.0,
	}, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
