// api/controller/payment_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
	"github.com/dev-mohitbeniwal/community/api/util"
)

type PaymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func (pc *PaymentController) RegisterRoutes(r *gin.RouterGroup) {
	bills := r.Group("/bills")
	{
		bills.POST("", pc.CreateBill)
		bills.GET("", pc.ListBills)
	}
	payments := r.Group("/payments")
	{
		payments.POST("", pc.CreatePayment)
		payments.GET("", pc.ListPayments)
		payments.POST("/:number/settle", pc.SettlePayment)
		payments.POST("/:number/refund", pc.RefundPayment)
	}
}

func orderNumber(c *gin.Context) (string, bool) {
	number := c.Param("number")
	if number == "" {
		util.RespondWithError(c, http.StatusBadRequest, "order number is required", echo_errors.ErrInvalidRequest)
		return "", false
	}
	return number, true
}

func (pc *PaymentController) CreateBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}
	bill, err := pc.paymentService.CreateBill(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (pc *PaymentController) ListBills(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	bills, err := pc.paymentService.ListBills(c, actor, model.BillStatus(c.Query("status")), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := pc.paymentService.CreatePayment(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) ListPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	payments, err := pc.paymentService.ListPayments(c, actor, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// SettlePayment applies a gateway callback to the payment order.
func (pc *PaymentController) SettlePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	number, ok := orderNumber(c)
	if !ok {
		return
	}
	var req model.SettlePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := pc.paymentService.SettlePayment(c, actor, number, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to settle payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) RefundPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	number, ok := orderNumber(c)
	if !ok {
		return
	}
	payment, err := pc.paymentService.RefundPayment(c, actor, number)
	if err != nil {
		respondWithServiceError(c, err, "Failed to refund payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}
