package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

func TestEffectiveBillStatus(t *testing.T) {
	bill := &model.PropertyFeeBill{ID: 1, Status: model.BillPending, DueDate: now}
	assert.Equal(t, model.BillPending, workflow.EffectiveBillStatus(bill, now))
	assert.Equal(t, model.BillOverdue, workflow.EffectiveBillStatus(bill, now.Add(time.Second)))

	bill.Status = model.BillPaid
	assert.Equal(t, model.BillPaid, workflow.EffectiveBillStatus(bill, now.Add(time.Hour)))
}

func TestNewBill(t *testing.T) {
	req := &model.CreateBillRequest{HouseID: 101, BillingPeriod: "2024-05", AmountCents: 25000, DueDate: now}

	_, err := workflow.NewBill(resident, req)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	bill, err := workflow.NewBill(staff, req)
	require.NoError(t, err)
	assert.Equal(t, model.BillPending, bill.Status)

	_, err = workflow.NewBill(staff, &model.CreateBillRequest{HouseID: 101, BillingPeriod: "May-24", AmountCents: 1, DueDate: now})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidBillData)
}

func TestSettlePayment(t *testing.T) {
	bill := &model.PropertyFeeBill{ID: 4, HouseID: 101, AmountCents: 25000, Status: model.BillPending}
	payment, err := workflow.NewBillPayment(resident, bill, model.GatewayAlipay, "P20240506093000ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, int64(25000), payment.AmountCents)
	assert.Equal(t, model.PaymentCreated, payment.Status)

	_, err = workflow.SettlePayment(resident, payment, true, "", now)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	changed, err := workflow.SettlePayment(staff, payment, true, "ALI-1", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.PaymentPaid, payment.Status)
	assert.Equal(t, "ALI-1", payment.GatewayOrderNo)

	changed, err = workflow.SettlePayment(staff, payment, true, "", now)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = workflow.SettlePayment(staff, payment, false, "", now)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	changed, err = workflow.MarkBillPaid(bill, now)
	require.NoError(t, err)
	assert.True(t, changed)
	_, err = workflow.MarkBillPaid(bill, now)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	_, err = workflow.NewBillPayment(resident, bill, model.GatewayAlipay, "P2")
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	changed, err = workflow.RefundPayment(staff, payment)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.PaymentRefunded, payment.Status)
}

func TestMerchantOrderPayment(t *testing.T) {
	order := &model.MerchantOrder{ID: 9, UserID: resident.ID, TotalCents: 3000, Status: model.MerchantOrderPending}

	_, err := workflow.NewMerchantOrderPayment(neighbor, order, model.GatewayWechat, "P1")
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	payment, err := workflow.NewMerchantOrderPayment(resident, order, model.GatewayWechat, "P1")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), payment.AmountCents)

	changed, err := workflow.MarkMerchantOrderPaid(order)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.MerchantOrderPaid, order.Status)
}
