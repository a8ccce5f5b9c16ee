// api/controller/complaint_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type ComplaintController struct {
	complaintService service.IComplaintService
}

func NewComplaintController(complaintService service.IComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

func (cc *ComplaintController) RegisterRoutes(r *gin.RouterGroup) {
	complaints := r.Group("/complaints")
	{
		complaints.POST("", cc.CreateComplaint)
		complaints.GET("", cc.ListComplaints)
		complaints.GET("/statistics", cc.Statistics)
		complaints.GET("/types", cc.Types)
		complaints.GET("/:id", cc.GetComplaint)
		complaints.DELETE("/:id", cc.DeleteComplaint)
		complaints.POST("/:id/process", cc.ProcessComplaint)
		complaints.POST("/:id/supplement", cc.SupplementComplaint)
	}
}

func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateComplaintRequest
	if !bindJSON(c, &req) {
		return
	}
	complaint, err := cc.complaintService.CreateComplaint(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create complaint")
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	complaint, err := cc.complaintService.GetComplaint(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve complaint")
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ListComplaints endpoint. Accepts status and type filters.
func (cc *ComplaintController) ListComplaints(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	filter := model.ComplaintFilter{
		Status: model.ComplaintStatus(c.Query("status")),
		Type:   c.Query("type"),
	}
	complaints, err := cc.complaintService.ListComplaints(c, actor, filter, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list complaints")
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (cc *ComplaintController) DeleteComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.complaintService.DeleteComplaint(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to delete complaint")
		return
	}
	deleted(c, "complaint")
}

func (cc *ComplaintController) ProcessComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.ProcessComplaintRequest
	if !bindJSON(c, &req) {
		return
	}
	complaint, err := cc.complaintService.ProcessComplaint(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to process complaint")
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (cc *ComplaintController) SupplementComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.SupplementRequest
	if !bindJSON(c, &req) {
		return
	}
	complaint, err := cc.complaintService.SupplementComplaint(c, actor, id, req.Content)
	if err != nil {
		respondWithServiceError(c, err, "Failed to supplement complaint")
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (cc *ComplaintController) Statistics(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	stats, err := cc.complaintService.Statistics(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to compute complaint statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (cc *ComplaintController) Types(c *gin.Context) {
	c.JSON(http.StatusOK, cc.complaintService.Types())
}
