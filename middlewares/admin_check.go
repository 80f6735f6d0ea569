package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rental-portal/models"
	"github.com/yeremiapane/rental-portal/utils"
	"gorm.io/gorm"
)

// AdminRequired membaca ulang role dari tabel users pada setiap
// request. Claim role di dalam token bisa basi kalau role akun diubah
// setelah token diterbitkan, jadi claim itu tidak pernah dipercaya.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDInterface, exists := c.Get("user_id")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
			c.Abort()
			return
		}

		userID, ok := userIDInterface.(uint)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id type"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			// Akun tidak bisa di-resolve -> fail closed
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAdmin dipakai handler list/detail untuk menentukan scoping data.
// Sama seperti AdminRequired, selalu membaca store, bukan claim.
func IsAdmin(db *gorm.DB, userID uint) bool {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return false
	}
	return user.Role == models.RoleAdmin
}
