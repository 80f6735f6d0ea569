package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/rental-portal/models"
)

func TestAmenityCRUD(t *testing.T) {
	db := newTestDB(t, "amenity_crud")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)

	w := performRequest(r, "POST", "/amenities", map[string]interface{}{
		"name":               "Swimming Pool",
		"description":        "Outdoor pool",
		"availability_hours": "6 AM - 10 PM",
	}, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeResponse(t, w)["data"].(map[string]interface{})
	amenityID := int(created["id"].(float64))
	assert.Equal(t, true, created["is_active"])

	w = performRequest(r, "PUT", fmt.Sprintf("/amenities/%d", amenityID), map[string]interface{}{
		"availability_hours": "24 hours",
	}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "24 hours", updated["availability_hours"])
	assert.Equal(t, "Swimming Pool", updated["name"])
}

// Delete amenity adalah soft delete: baris tetap ada, is_active mati,
// dan amenity hilang dari listing publik.
func TestAmenitySoftDelete(t *testing.T) {
	db := newTestDB(t, "amenity_soft_delete")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)

	amenity := models.Amenity{Name: "Fitness Center", IsActive: true}
	db.Create(&amenity)

	w := performRequest(r, "GET", "/amenities", nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 1)

	w = performRequest(r, "DELETE", fmt.Sprintf("/amenities/%d", amenity.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Baris masih ada tapi tidak aktif
	var stored models.Amenity
	assert.NoError(t, db.First(&stored, amenity.ID).Error)
	assert.False(t, stored.IsActive)

	// Listing publik tidak lagi menampilkannya
	w = performRequest(r, "GET", "/amenities", nil, "")
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 0)

	// Delete kedua kali -> conflict
	w = performRequest(r, "DELETE", fmt.Sprintf("/amenities/%d", amenity.ID), nil, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAmenityMutationRequiresAdmin(t *testing.T) {
	db := newTestDB(t, "amenity_admin_only")
	r := setupRouter(db)

	tenant := createUser(t, db, "tenant@example.com", "user")
	tenantToken := tokenFor(t, tenant)

	w := performRequest(r, "POST", "/amenities", map[string]interface{}{
		"name": "Sauna",
	}, tenantToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
