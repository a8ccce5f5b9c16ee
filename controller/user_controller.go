// api/controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", uc.GetProfile)
		users.GET("", uc.ListUsers)
		users.PUT("/:id/role", uc.AssignRole)
	}
}

// GetProfile endpoint
func (uc *UserController) GetProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	profile, err := uc.userService.GetProfile(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	users, err := uc.userService.ListUsers(c, actor, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// AssignRole endpoint
func (uc *UserController) AssignRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.AssignRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := uc.userService.AssignRole(c, actor, userID, req.RoleType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to assign role")
		return
	}
	c.JSON(http.StatusOK, user)
}
