// api/controller/visitor_pass_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type VisitorPassController struct {
	passService service.IVisitorPassService
}

func NewVisitorPassController(passService service.IVisitorPassService) *VisitorPassController {
	return &VisitorPassController{passService: passService}
}

func (vc *VisitorPassController) RegisterRoutes(r *gin.RouterGroup) {
	passes := r.Group("/visitor-passes")
	{
		passes.POST("", vc.CreatePass)
		passes.GET("", vc.ListPasses)
		passes.POST("/use", vc.UsePass)
		passes.GET("/:id", vc.GetPass)
		passes.POST("/:id/cancel", vc.CancelPass)
	}
}

func (vc *VisitorPassController) CreatePass(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateVisitorPassRequest
	if !bindJSON(c, &req) {
		return
	}
	pass, err := vc.passService.CreatePass(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create visitor pass")
		return
	}
	c.JSON(http.StatusCreated, pass)
}

func (vc *VisitorPassController) GetPass(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pass, err := vc.passService.GetPass(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve visitor pass")
		return
	}
	c.JSON(http.StatusOK, pass)
}

func (vc *VisitorPassController) ListPasses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	passes, err := vc.passService.ListPasses(c, actor, model.PassStatus(c.Query("status")), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list visitor passes")
		return
	}
	c.JSON(http.StatusOK, passes)
}

func (vc *VisitorPassController) CancelPass(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pass, err := vc.passService.CancelPass(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to cancel visitor pass")
		return
	}
	c.JSON(http.StatusOK, pass)
}

// UsePass admits a visitor by pass code.
func (vc *VisitorPassController) UsePass(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.UsePassRequest
	if !bindJSON(c, &req) {
		return
	}
	pass, err := vc.passService.UsePass(c, actor, req.PassCode)
	if err != nil {
		respondWithServiceError(c, err, "Failed to use visitor pass")
		return
	}
	c.JSON(http.StatusOK, pass)
}
