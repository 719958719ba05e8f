package auth

import (
	"net/http"

	"taskmanager/dto"

	"github.com/gin-gonic/gin"
)

// AuthController registers the auth modal's operations. Every handler
// answers with the modal's renderable state so the caller sees the outcome
// the way the page would.
func AuthController(router *gin.Engine, ctrl *Controller) {
	router.POST("/auth/modal", func(c *gin.Context) {
		var request dto.OpenModalRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		ctrl.OpenModal(Mode(request.Mode))
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.PUT("/auth/modal", func(c *gin.Context) {
		var request dto.OpenModalRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		ctrl.SwitchMode(Mode(request.Mode))
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.DELETE("/auth/modal", func(c *gin.Context) {
		ctrl.Dismiss()
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.POST("/auth/signin", func(c *gin.Context) {
		var request dto.LoginRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		ctrl.SubmitLogin(c.Request.Context(), request.Email, request.Password)
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.POST("/auth/signup", func(c *gin.Context) {
		var request dto.SignupRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		ctrl.SubmitSignup(c.Request.Context(), request.Email, request.Password, request.ConfirmPassword)
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.POST("/auth/googlelogin", func(c *gin.Context) {
		ctrl.LoginWithProvider(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"modal": ctrl.View()})
	})

	router.POST("/auth/signout", func(c *gin.Context) {
		ctrl.Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	})
}
