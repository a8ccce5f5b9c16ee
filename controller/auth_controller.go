// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the unauthenticated auth routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.authService.Register(c, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := ac.authService.Login(c, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, token)
}
