package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/controllers"
	"github.com/yeremiapane/rental-portal/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global (50 request per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	authCtrl := controllers.NewAuthController(db)
	towerCtrl := controllers.NewTowerController(db)
	unitCtrl := controllers.NewUnitController(db)
	amenityCtrl := controllers.NewAmenityController(db)
	bookingCtrl := controllers.NewBookingController(db)
	leaseCtrl := controllers.NewLeaseController(db)
	paymentCtrl := controllers.NewPaymentController(db)

	authed := middlewares.AuthMiddleware()
	adminOnly := middlewares.AdminRequired(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      AUTH
	// ----------------------------------------------------------------
	auth := r.Group("/auth")
	auth.POST("/register", middlewares.NewStrictRateLimiter(), authCtrl.Register)
	auth.POST("/login", middlewares.NewStrictRateLimiter(), authCtrl.Login)
	auth.GET("/me", authed, authCtrl.Me)

	// ----------------------------------------------------------------
	//                      TOWERS (read publik, mutasi admin)
	// ----------------------------------------------------------------
	r.GET("/towers", towerCtrl.GetAllTowers)
	r.GET("/towers/:tower_id", towerCtrl.GetTowerByID)
	r.POST("/towers", authed, adminOnly, towerCtrl.CreateTower)
	r.PUT("/towers/:tower_id", authed, adminOnly, towerCtrl.UpdateTower)
	r.DELETE("/towers/:tower_id", authed, adminOnly, towerCtrl.DeleteTower)

	// ----------------------------------------------------------------
	//                      UNITS
	// ----------------------------------------------------------------
	r.GET("/units", unitCtrl.GetAllUnits)
	r.GET("/units/:unit_id", unitCtrl.GetUnitByID)
	r.POST("/units", authed, adminOnly, unitCtrl.CreateUnit)
	r.PUT("/units/:unit_id", authed, adminOnly, unitCtrl.UpdateUnit)
	r.DELETE("/units/:unit_id", authed, adminOnly, unitCtrl.DeleteUnit)

	// ----------------------------------------------------------------
	//                      AMENITIES
	// ----------------------------------------------------------------
	r.GET("/amenities", amenityCtrl.GetAllAmenities)
	r.GET("/amenities/:amenity_id", amenityCtrl.GetAmenityByID)
	r.POST("/amenities", authed, adminOnly, amenityCtrl.CreateAmenity)
	r.PUT("/amenities/:amenity_id", authed, adminOnly, amenityCtrl.UpdateAmenity)
	r.DELETE("/amenities/:amenity_id", authed, adminOnly, amenityCtrl.DeleteAmenity)

	// ----------------------------------------------------------------
	//                      BOOKINGS
	// ----------------------------------------------------------------
	r.POST("/bookings", authed, bookingCtrl.CreateBooking)
	r.GET("/bookings", authed, bookingCtrl.GetAllBookings)
	r.GET("/bookings/:booking_id", authed, bookingCtrl.GetBookingByID)
	r.PUT("/bookings/:booking_id/approve", authed, adminOnly, bookingCtrl.ApproveBooking)
	r.PUT("/bookings/:booking_id/reject", authed, adminOnly, bookingCtrl.RejectBooking)

	// ----------------------------------------------------------------
	//                      LEASES
	// ----------------------------------------------------------------
	r.GET("/leases", authed, leaseCtrl.GetAllLeases)
	r.GET("/leases/stats", authed, adminOnly, leaseCtrl.GetLeaseStats)
	r.GET("/leases/:lease_id", authed, leaseCtrl.GetLeaseByID)

	// ----------------------------------------------------------------
	//                      PAYMENTS
	// ----------------------------------------------------------------
	r.POST("/payments", authed, adminOnly, paymentCtrl.CreatePayment)
	r.GET("/payments", authed, paymentCtrl.GetAllPayments)
	r.GET("/payments/:payment_id", authed, paymentCtrl.GetPaymentByID)

	return r
}
