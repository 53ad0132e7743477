package route

import (
	"github.com/gin-gonic/gin"

	"photoalbum/controller"
)

// Unprotected registers the account routes reachable without a token.
func Unprotected(router *gin.Engine, users *controller.UserController) {
	router.POST("/registration", users.Register)
	router.POST("/login", users.Login)
	router.POST("/logout", users.Logout)
}
