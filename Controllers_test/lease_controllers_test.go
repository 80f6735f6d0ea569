package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/rental-portal/models"
)

func seedLease(t *testing.T, db *gorm.DB, userID uint, status string) models.Lease {
	t.Helper()

	tower := models.Tower{Name: "Tower A", Address: "123 Main Street"}
	db.Create(&tower)
	unit := models.Unit{TowerID: tower.ID, UnitNumber: "A-101", RentAmount: 1000, Status: models.UnitStatusOccupied}
	db.Create(&unit)
	booking := models.Booking{UserID: userID, UnitID: unit.ID, Status: models.BookingStatusApproved}
	db.Create(&booking)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lease := models.Lease{
		BookingID:       booking.ID,
		UserID:          userID,
		UnitID:          unit.ID,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 365),
		MonthlyRent:     1000,
		SecurityDeposit: 2000,
		Status:          status,
	}
	db.Create(&lease)
	return lease
}

func TestLeaseOwnerScoping(t *testing.T) {
	db := newTestDB(t, "lease_scoping")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)
	alice := createUser(t, db, "alice@example.com", "user")
	aliceToken := tokenFor(t, alice)
	bob := createUser(t, db, "bob@example.com", "user")

	aliceLease := seedLease(t, db, alice.ID, models.LeaseStatusActive)
	bobLease := seedLease(t, db, bob.ID, models.LeaseStatusExpired)

	w := performRequest(r, "GET", "/leases", nil, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, float64(aliceLease.ID), data[0].(map[string]interface{})["id"])

	w = performRequest(r, "GET", "/leases", nil, adminToken)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 2)

	// Filter status hanya untuk admin
	w = performRequest(r, "GET", "/leases?status=expired", nil, adminToken)
	data = decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, float64(bobLease.ID), data[0].(map[string]interface{})["id"])

	// Detail milik orang lain -> forbidden
	w = performRequest(r, "GET", fmt.Sprintf("/leases/%d", bobLease.ID), nil, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(r, "GET", fmt.Sprintf("/leases/%d", aliceLease.ID), nil, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaseStats(t *testing.T) {
	db := newTestDB(t, "lease_stats")
	r := setupRouter(db)

	admin := createUser(t, db, "admin@rental.com", "admin")
	adminToken := tokenFor(t, admin)
	tenant := createUser(t, db, "tenant@example.com", "user")
	tenantToken := tokenFor(t, tenant)

	seedLease(t, db, tenant.ID, models.LeaseStatusActive)
	seedLease(t, db, tenant.ID, models.LeaseStatusActive)
	seedLease(t, db, tenant.ID, models.LeaseStatusExpired)

	w := performRequest(r, "GET", "/leases/stats", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	stats := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_leases"])
	assert.Equal(t, float64(2), stats["active_leases"])
	assert.Equal(t, float64(1), stats["expired_leases"])

	// Stats khusus admin
	w = performRequest(r, "GET", "/leases/stats", nil, tenantToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
