package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the auth, store
// and cart route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Browse routes (anonymous allowed, principal picked up when present)
	SetupStoreRoutes(r, db)

	// Cart mutation + checkout routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Completed-order history (JWT-protected, read-only)
	SetupOrderRoutes(r, db)
}
