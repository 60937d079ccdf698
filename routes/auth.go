package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/shoppee-dev/shoppee-api/controllers/auth"
)

// SetupAuthRoutes registers registration and login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", authControllers.Register(db))
	r.POST("/login/", authControllers.Login(db))
	r.GET("/logout/", authControllers.Logout())
}
