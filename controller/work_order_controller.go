// api/controller/work_order_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type WorkOrderController struct {
	workOrderService service.IWorkOrderService
}

func NewWorkOrderController(workOrderService service.IWorkOrderService) *WorkOrderController {
	return &WorkOrderController{workOrderService: workOrderService}
}

func (wc *WorkOrderController) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/work-orders")
	{
		orders.POST("", wc.CreateWorkOrder)
		orders.GET("", wc.ListWorkOrders)
		orders.GET("/statistics", wc.Statistics)
		orders.GET("/:id", wc.GetWorkOrder)
		orders.POST("/:id/assign", wc.AssignWorkOrder)
		orders.POST("/:id/transition", wc.TransitionWorkOrder)
		orders.POST("/:id/supplement", wc.SupplementWorkOrder)
		orders.GET("/:id/comments", wc.ListComments)
		orders.POST("/:id/comments", wc.AddComment)
		orders.POST("/:id/rating", wc.RateWorkOrder)
	}
}

func (wc *WorkOrderController) CreateWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateWorkOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := wc.workOrderService.CreateWorkOrder(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create work order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (wc *WorkOrderController) GetWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := wc.workOrderService.GetWorkOrder(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (wc *WorkOrderController) ListWorkOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	status := model.WorkOrderStatus(c.Query("status"))
	orders, err := wc.workOrderService.ListWorkOrders(c, actor, status, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list work orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (wc *WorkOrderController) Statistics(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	stats, err := wc.workOrderService.Statistics(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to compute work order statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (wc *WorkOrderController) AssignWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.AssignWorkOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := wc.workOrderService.AssignWorkOrder(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to assign work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (wc *WorkOrderController) TransitionWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.WorkOrderTransitionRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := wc.workOrderService.TransitionWorkOrder(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (wc *WorkOrderController) SupplementWorkOrder(c *gin.Context) {
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
	order, err := wc.workOrderService.SupplementWorkOrder(c, actor, id, req.Content)
	if err != nil {
		respondWithServiceError(c, err, "Failed to supplement work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (wc *WorkOrderController) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := wc.workOrderService.AddComment(c, actor, id, req.Content)
	if err != nil {
		respondWithServiceError(c, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (wc *WorkOrderController) ListComments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := wc.workOrderService.ListComments(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (wc *WorkOrderController) RateWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.RatingRequest
	if !bindJSON(c, &req) {
		return
	}
	rating, err := wc.workOrderService.RateWorkOrder(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to rate work order")
		return
	}
	c.JSON(http.StatusCreated, rating)
}
