package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type PaymentDAO struct {
	DB *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{DB: db}
}

func paymentStatus(p *model.PaymentOrder) string { return string(p.Status) }

func (dao *PaymentDAO) CreateBill(ctx context.Context, bill *model.PropertyFeeBill) error {
	logger.Info("Creating property fee bill", zap.Uint("houseID", bill.HouseID), zap.String("period", bill.BillingPeriod))
	if err := dao.DB.WithContext(ctx).Create(bill).Error; err != nil {
		return conflictError(err, echo_errors.ErrBillConflict)
	}
	return nil
}

func (dao *PaymentDAO) GetBill(ctx context.Context, billID uint) (*model.PropertyFeeBill, error) {
	var bill model.PropertyFeeBill
	if err := dao.DB.WithContext(ctx).First(&bill, billID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBillNotFound)
	}
	return &bill, nil
}

// ListBills filters by house when HouseIDs is non-nil. Overdue is not a
// stored status, so the caller filters it after reading.
func (dao *PaymentDAO) ListBills(ctx context.Context, filter model.BillFilter, limit, offset int) ([]model.PropertyFeeBill, error) {
	q := dao.DB.WithContext(ctx).Order("billing_period DESC, id DESC")
	if filter.HouseIDs != nil {
		if len(filter.HouseIDs) == 0 {
			return []model.PropertyFeeBill{}, nil
		}
		q = q.Where("house_id IN ?", filter.HouseIDs)
	}
	if filter.Status == model.BillPaid {
		q = q.Where("status = ?", model.BillPaid)
	} else if filter.Status != "" {
		q = q.Where("status <> ?", model.BillPaid)
	}
	var bills []model.PropertyFeeBill
	if err := applyPage(q, limit, offset).Find(&bills).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBillNotFound)
	}
	return bills, nil
}

func (dao *PaymentDAO) CreatePayment(ctx context.Context, payment *model.PaymentOrder) error {
	logger.Info("Creating payment order", zap.String("orderNumber", payment.OrderNumber), zap.Uint("userID", payment.UserID))
	if err := dao.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return conflictError(err, echo_errors.ErrInvalidPaymentData)
	}
	return nil
}

func (dao *PaymentDAO) GetPaymentByNumber(ctx context.Context, orderNumber string) (*model.PaymentOrder, error) {
	var payment model.PaymentOrder
	if err := dao.DB.WithContext(ctx).Where("order_number = ?", orderNumber).First(&payment).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrPaymentNotFound)
	}
	return &payment, nil
}

func (dao *PaymentDAO) ListPayments(ctx context.Context, userID *uint, limit, offset int) ([]model.PaymentOrder, error) {
	q := dao.DB.WithContext(ctx).Order("id DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var payments []model.PaymentOrder
	if err := applyPage(q, limit, offset).Find(&payments).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrPaymentNotFound)
	}
	return payments, nil
}

// SettlePayment applies settle to the locked payment. When the payment ends
// up paid, the linked bill or merchant order is moved to paid in the same
// transaction, so either both change or neither does.
func (dao *PaymentDAO) SettlePayment(ctx context.Context, orderNumber string, settle Mutation[model.PaymentOrder],
	payBill Mutation[model.PropertyFeeBill], payOrder Mutation[model.MerchantOrder]) (*model.PaymentOrder, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrPaymentNotFound, paymentStatus,
		func(tx *gorm.DB, p *model.PaymentOrder) (bool, error) {
			changed, err := settle(p)
			if err != nil || !changed || p.Status != model.PaymentPaid {
				return changed, err
			}
			if p.BillID != nil {
				if _, _, err := transition(ctx, tx, echo_errors.ErrBillNotFound,
					func(b *model.PropertyFeeBill) string { return string(b.Status) },
					lift(payBill), *p.BillID); err != nil {
					return false, err
				}
			}
			if p.MerchantOrderID != nil {
				if _, _, err := transition(ctx, tx, echo_errors.ErrMerchantOrderNotFound,
					merchantOrderStatus, lift(payOrder), *p.MerchantOrderID); err != nil {
					return false, err
				}
			}
			return true, nil
		},
		"order_number = ?", orderNumber)
}

func (dao *PaymentDAO) TransitionPayment(ctx context.Context, orderNumber string, mutate Mutation[model.PaymentOrder]) (*model.PaymentOrder, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrPaymentNotFound, paymentStatus, lift(mutate), "order_number = ?", orderNumber)
}
