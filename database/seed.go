package database

import (
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed mengisi data demo: satu admin, dua tenant, dua tower berikut
// unit-unitnya dan beberapa amenity. Idempotent: dilewati kalau sudah
// ada user di database.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		utils.InfoLogger.Println("Seed skipped, users already exist")
		return nil
	}

	users := []struct {
		email    string
		password string
		name     string
		phone    string
		role     string
	}{
		{"admin@rental.com", "admin123", "Admin User", "1234567890", models.RoleAdmin},
		{"john@example.com", "password123", "John Doe", "5551234567", models.RoleUser},
		{"jane@example.com", "password123", "Jane Smith", "5559876543", models.RoleUser},
	}

	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Email:    u.email,
			Password: string(hashed),
			Name:     u.name,
			Phone:    u.phone,
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	towerA := models.Tower{
		Name:        "Tower A",
		Address:     "123 Main Street, Downtown",
		TotalFloors: 15,
		Description: "Modern residential tower with city views",
	}
	towerB := models.Tower{
		Name:        "Tower B",
		Address:     "456 Park Avenue, Midtown",
		TotalFloors: 20,
		Description: "Luxury apartments near the central park",
	}
	if err := db.Create(&towerA).Error; err != nil {
		return err
	}
	if err := db.Create(&towerB).Error; err != nil {
		return err
	}

	units := []models.Unit{
		{TowerID: towerA.ID, UnitNumber: "A-101", Floor: 1, Bedrooms: 1, Bathrooms: 1, SizeSqft: 650, RentAmount: 1200, Status: models.UnitStatusAvailable, Description: "Cozy one bedroom"},
		{TowerID: towerA.ID, UnitNumber: "A-502", Floor: 5, Bedrooms: 2, Bathrooms: 2, SizeSqft: 950, RentAmount: 1800, Status: models.UnitStatusAvailable, Description: "Two bedroom with balcony"},
		{TowerID: towerA.ID, UnitNumber: "A-1203", Floor: 12, Bedrooms: 3, Bathrooms: 2, SizeSqft: 1400, RentAmount: 2600, Status: models.UnitStatusMaintenance, Description: "Corner unit under renovation"},
		{TowerID: towerB.ID, UnitNumber: "B-203", Floor: 2, Bedrooms: 1, Bathrooms: 1, SizeSqft: 700, RentAmount: 1350, Status: models.UnitStatusAvailable, Description: "Park-facing studio plus"},
		{TowerID: towerB.ID, UnitNumber: "B-1501", Floor: 15, Bedrooms: 3, Bathrooms: 3, SizeSqft: 1650, RentAmount: 3200, Status: models.UnitStatusAvailable, Description: "Penthouse-level three bedroom"},
	}
	for i := range units {
		if err := db.Create(&units[i]).Error; err != nil {
			return err
		}
	}

	amenities := []models.Amenity{
		{Name: "Swimming Pool", Description: "Outdoor pool with lounge area", AvailabilityHours: "6 AM - 10 PM", IsActive: true},
		{Name: "Fitness Center", Description: "Fully equipped gym", AvailabilityHours: "24 hours", IsActive: true},
		{Name: "Community Hall", Description: "Bookable event space", AvailabilityHours: "9 AM - 9 PM", IsActive: true},
	}
	for i := range amenities {
		if err := db.Create(&amenities[i]).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Println("Seed data created")
	return nil
}
