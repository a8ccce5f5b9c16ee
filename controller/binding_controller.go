// api/controller/binding_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
	"github.com/dev-mohitbeniwal/community/api/util"
)

// BindingController serves ownership binding requests and their review.
type BindingController struct {
	bindingService service.IBindingService
}

func NewBindingController(bindingService service.IBindingService) *BindingController {
	return &BindingController{bindingService: bindingService}
}

func (bc *BindingController) RegisterRoutes(r *gin.RouterGroup) {
	bindings := r.Group("/bindings")
	{
		bindings.POST("", bc.CreateBinding)
		bindings.GET("", bc.ListBindings)
		bindings.GET("/pending", bc.ListPendingBindings)
		bindings.GET("/mine", bc.ListMyBindings)
		bindings.GET("/:id", bc.GetBinding)
		bindings.POST("/:id/approve", bc.ApproveBinding)
		bindings.POST("/:id/reject", bc.RejectBinding)
	}
}

// CreateBinding endpoint
func (bc *BindingController) CreateBinding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateBindingRequest
	if !bindJSON(c, &req) {
		return
	}
	binding, err := bc.bindingService.CreateBinding(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create binding")
		return
	}
	c.JSON(http.StatusCreated, binding)
}

// GetBinding endpoint
func (bc *BindingController) GetBinding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	binding, err := bc.bindingService.GetBinding(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve binding")
		return
	}
	c.JSON(http.StatusOK, binding)
}

// ListBindings endpoint. Accepts user_id, house_id and status filters.
func (bc *BindingController) ListBindings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	userID, err := util.ParseUintQuery(c, "user_id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), echo_errors.ErrInvalidRequest)
		return
	}
	houseID, err := util.ParseUintQuery(c, "house_id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), echo_errors.ErrInvalidRequest)
		return
	}
	filter := model.BindingFilter{
		UserID:  userID,
		HouseID: houseID,
		Status:  model.BindingStatus(c.Query("status")),
	}
	bindings, err := bc.bindingService.ListBindings(c, actor, filter, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list bindings")
		return
	}
	c.JSON(http.StatusOK, bindings)
}

// ListPendingBindings endpoint
func (bc *BindingController) ListPendingBindings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	bindings, err := bc.bindingService.ListPendingBindings(c, actor, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list pending bindings")
		return
	}
	c.JSON(http.StatusOK, bindings)
}

// ListMyBindings endpoint
func (bc *BindingController) ListMyBindings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	bindings, err := bc.bindingService.ListMyBindings(c, actor, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list bindings")
		return
	}
	c.JSON(http.StatusOK, bindings)
}

// ApproveBinding endpoint
func (bc *BindingController) ApproveBinding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	binding, err := bc.bindingService.ApproveBinding(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to approve binding")
		return
	}
	c.JSON(http.StatusOK, binding)
}

// RejectBinding endpoint. The body with a reason is optional.
func (bc *BindingController) RejectBinding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.DecisionRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	binding, err := bc.bindingService.RejectBinding(c, actor, id, req.Reason)
	if err != nil {
		respondWithServiceError(c, err, "Failed to reject binding")
		return
	}
	c.JSON(http.StatusOK, binding)
}
