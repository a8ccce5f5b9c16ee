// api/controller/merchant_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

// MerchantController serves merchant applications, their service catalogues
// and orders placed against them.
type MerchantController struct {
	merchantService service.IMerchantService
}

func NewMerchantController(merchantService service.IMerchantService) *MerchantController {
	return &MerchantController{merchantService: merchantService}
}

func (mc *MerchantController) RegisterRoutes(r *gin.RouterGroup) {
	merchants := r.Group("/merchants")
	{
		merchants.POST("", mc.Apply)
		merchants.GET("", mc.ListMerchants)
		merchants.GET("/:id", mc.GetMerchant)
		merchants.POST("/:id/approve", mc.ApproveMerchant)
		merchants.POST("/:id/reject", mc.RejectMerchant)
		merchants.GET("/:id/services", mc.ListServices)
		merchants.POST("/:id/services", mc.CreateService)
	}
	r.PUT("/merchant-services/:id", mc.UpdateService)
	orders := r.Group("/merchant-orders")
	{
		orders.POST("", mc.CreateOrder)
		orders.GET("", mc.ListOrders)
		orders.GET("/:id", mc.GetOrder)
		orders.POST("/:id/transition", mc.TransitionOrder)
	}
}

func (mc *MerchantController) Apply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.MerchantApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	merchant, err := mc.merchantService.Apply(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to submit merchant application")
		return
	}
	c.JSON(http.StatusCreated, merchant)
}

func (mc *MerchantController) GetMerchant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	merchant, err := mc.merchantService.GetMerchant(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve merchant")
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (mc *MerchantController) ListMerchants(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	filter := model.MerchantFilter{Status: model.MerchantStatus(c.Query("status"))}
	merchants, err := mc.merchantService.ListMerchants(c, actor, filter, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list merchants")
		return
	}
	c.JSON(http.StatusOK, merchants)
}

func (mc *MerchantController) ApproveMerchant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	merchant, err := mc.merchantService.ApproveMerchant(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to approve merchant")
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (mc *MerchantController) RejectMerchant(c *gin.Context) {
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
	merchant, err := mc.merchantService.RejectMerchant(c, actor, id, req.Reason)
	if err != nil {
		respondWithServiceError(c, err, "Failed to reject merchant")
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (mc *MerchantController) CreateService(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	merchantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.MerchantServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := mc.merchantService.CreateService(c, actor, merchantID, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create merchant service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (mc *MerchantController) UpdateService(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.MerchantServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := mc.merchantService.UpdateService(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update merchant service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (mc *MerchantController) ListServices(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	merchantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	services, err := mc.merchantService.ListServices(c, actor, merchantID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list merchant services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (mc *MerchantController) CreateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateMerchantOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := mc.merchantService.CreateOrder(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create merchant order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (mc *MerchantController) GetOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := mc.merchantService.GetOrder(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve merchant order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (mc *MerchantController) ListOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	status := model.MerchantOrderStatus(c.Query("status"))
	orders, err := mc.merchantService.ListOrders(c, actor, status, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list merchant orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (mc *MerchantController) TransitionOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.MerchantOrderTransitionRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := mc.merchantService.TransitionOrder(c, actor, id, req.Status)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update merchant order")
		return
	}
	c.JSON(http.StatusOK, order)
}
