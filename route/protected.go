package route

import (
	"github.com/gin-gonic/gin"

	"photoalbum/controller"
	mw "photoalbum/middlewares"
)

// Protected registers the routes that require an authenticated owner.
func Protected(router *gin.Engine, jwtSecret string, photos *controller.PhotoController) {
	protected := router.Group("/")

	protected.Use(mw.JWT(jwtSecret))
	protected.POST("/upload", photos.Upload)
	protected.GET("/gallery", photos.Gallery)
	protected.GET("/gallery/:year/:location", photos.YearLocation)
}
