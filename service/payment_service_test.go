package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type fakePaymentStore struct {
	mu       sync.Mutex
	bills    *table[model.PropertyFeeBill]
	orders   *table[model.MerchantOrder]
	payments *table[model.PaymentOrder]

	beforeSettle func()
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		bills:    newTable[model.PropertyFeeBill](),
		orders:   newTable[model.MerchantOrder](),
		payments: newTable[model.PaymentOrder](),
	}
}

func (f *fakePaymentStore) CreateBill(ctx context.Context, bill *model.PropertyFeeBill) error {
	f.bills.insert(bill, func(b *model.PropertyFeeBill, id uint) { b.ID = id })
	return nil
}

func (f *fakePaymentStore) GetBill(ctx context.Context, billID uint) (*model.PropertyFeeBill, error) {
	return f.bills.get(billID, echo_errors.ErrBillNotFound)
}

func (f *fakePaymentStore) ListBills(ctx context.Context, filter model.BillFilter, limit, offset int) ([]model.PropertyFeeBill, error) {
	var out []model.PropertyFeeBill
	for _, b := range f.bills.all() {
		if filter.HouseIDs != nil && !intersects([]uint{b.HouseID}, filter.HouseIDs) {
			continue
		}
		if filter.Status == model.BillPaid && b.Status != model.BillPaid {
			continue
		}
		if filter.Status != "" && filter.Status != model.BillPaid && b.Status == model.BillPaid {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakePaymentStore) GetOrder(ctx context.Context, orderID uint) (*model.MerchantOrder, error) {
	return f.orders.get(orderID, echo_errors.ErrMerchantOrderNotFound)
}

func (f *fakePaymentStore) CreatePayment(ctx context.Context, payment *model.PaymentOrder) error {
	f.payments.insert(payment, func(p *model.PaymentOrder, id uint) { p.ID = id })
	return nil
}

func (f *fakePaymentStore) byNumber(orderNumber string) (uint, error) {
	for _, p := range f.payments.all() {
		if p.OrderNumber == orderNumber {
			return p.ID, nil
		}
	}
	return 0, echo_errors.ErrPaymentNotFound
}

func (f *fakePaymentStore) GetPaymentByNumber(ctx context.Context, orderNumber string) (*model.PaymentOrder, error) {
	id, err := f.byNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	return f.payments.get(id, echo_errors.ErrPaymentNotFound)
}

func (f *fakePaymentStore) ListPayments(ctx context.Context, userID *uint, limit, offset int) ([]model.PaymentOrder, error) {
	var out []model.PaymentOrder
	for _, p := range f.payments.all() {
		if userID == nil || p.UserID == *userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// SettlePayment holds one lock over every table so the linked row changes
// together with the payment.
func (f *fakePaymentStore) SettlePayment(ctx context.Context, orderNumber string, settle dao.Mutation[model.PaymentOrder],
	payBill dao.Mutation[model.PropertyFeeBill], payOrder dao.Mutation[model.MerchantOrder]) (*model.PaymentOrder, bool, error) {
	if f.beforeSettle != nil {
		f.beforeSettle()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id, err := f.byNumber(orderNumber)
	if err != nil {
		return nil, false, err
	}
	var billErr error
	payment, changed, err := f.payments.transition(id, echo_errors.ErrPaymentNotFound, func(p *model.PaymentOrder) (bool, error) {
		ok, err := settle(p)
		if err != nil || !ok || p.Status != model.PaymentPaid {
			return ok, err
		}
		if p.BillID != nil {
			_, _, billErr = f.bills.transition(*p.BillID, echo_errors.ErrBillNotFound, payBill)
		}
		if p.MerchantOrderID != nil && billErr == nil {
			_, _, billErr = f.orders.transition(*p.MerchantOrderID, echo_errors.ErrMerchantOrderNotFound, payOrder)
		}
		return true, billErr
	})
	return payment, changed, err
}

func (f *fakePaymentStore) TransitionPayment(ctx context.Context, orderNumber string, mutate dao.Mutation[model.PaymentOrder]) (*model.PaymentOrder, bool, error) {
	id, err := f.byNumber(orderNumber)
	if err != nil {
		return nil, false, err
	}
	return f.payments.transition(id, echo_errors.ErrPaymentNotFound, mutate)
}

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]string
	seq      int
	released []string
}

func (l *fakeLocker) Lock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = make(map[string]string)
	}
	if _, ok := l.held[name]; ok {
		return "", false, nil
	}
	l.seq++
	token := fmt.Sprintf("token-%d", l.seq)
	l.held[name] = token
	return token, true, nil
}

// expire drops the lock as a TTL would, leaving the old token stale.
func (l *fakeLocker) expire(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, name)
}

func (l *fakeLocker) Unlock(ctx context.Context, name, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[name] != token {
		return fmt.Errorf("lock %s is held by another token", name)
	}
	delete(l.held, name)
	l.released = append(l.released, token)
	return nil
}

func setupPaymentService(t *testing.T) (*PaymentService, *fakePaymentStore, *fakeLocker, *fakeEvents) {
	t.Helper()
	common, _, events := newCommon()
	store := newFakePaymentStore()
	locker := &fakeLocker{}
	svc := NewPaymentService(store, newFakeHouses(), store, locker, common)
	seq := 0
	svc.newNumber = func(prefix string, now time.Time) string {
		seq++
		return prefix + now.Format("20060102150405") + string(rune('A'+seq))
	}
	return svc, store, locker, events
}

func newBill(t *testing.T, svc *PaymentService, houseID uint, due time.Time) *model.PropertyFeeBill {
	t.Helper()
	bill, err := svc.CreateBill(context.Background(), staff, model.CreateBillRequest{
		HouseID:       houseID,
		BillingPeriod: "2026-03",
		AmountCents:   12000,
		DueDate:       due,
	})
	require.NoError(t, err)
	return bill
}

func TestCreateBill(t *testing.T) {
	svc, _, _, _ := setupPaymentService(t)
	ctx := context.Background()

	_, err := svc.CreateBill(ctx, resident, model.CreateBillRequest{HouseID: 101, BillingPeriod: "2026-03", AmountCents: 1, DueDate: clock})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.CreateBill(ctx, staff, model.CreateBillRequest{HouseID: 101, BillingPeriod: "March", AmountCents: 1, DueDate: clock})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidBillData)
}

func TestListBillsOverdueIsDerived(t *testing.T) {
	svc, _, _, _ := setupPaymentService(t)
	ctx := context.Background()
	newBill(t, svc, 101, clock.Add(-24*time.Hour))
	newBill(t, svc, 101, clock.Add(24*time.Hour))
	newBill(t, svc, 201, clock.Add(-24*time.Hour))

	overdue, err := svc.ListBills(ctx, resident, model.BillOverdue, 0, 0)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, uint(101), overdue[0].HouseID)
	assert.Equal(t, model.BillOverdue, overdue[0].Status)

	pending, err := svc.ListBills(ctx, resident, model.BillPending, 0, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.ListBills(ctx, staff, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPaymentSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("PaysOverdueBill", func(t *testing.T) {
		svc, store, _, events := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(-24*time.Hour))

		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayWechat})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentCreated, payment.Status)
		assert.Equal(t, bill.AmountCents, payment.AmountCents)
		assert.Regexp(t, `^P\d{14}`, payment.OrderNumber)

		settled, err := svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true, GatewayOrderNo: "wx-1"})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentPaid, settled.Status)
		assert.Equal(t, "wx-1", settled.GatewayOrderNo)

		stored, err := store.GetBill(ctx, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BillPaid, stored.Status)
		assert.Len(t, events.notifications(), 1)

		again, err := svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentPaid, again.Status)
		assert.Len(t, events.notifications(), 1)
	})

	t.Run("LockHeldElsewhere", func(t *testing.T) {
		svc, _, locker, _ := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(24*time.Hour))
		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayAlipay})
		require.NoError(t, err)

		token, ok, err := locker.Lock(ctx, "payment:"+payment.OrderNumber, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		assert.ErrorIs(t, err, echo_errors.ErrPaymentInProgress)
		assert.Equal(t, token, locker.held["payment:"+payment.OrderNumber])
	})

	t.Run("ReleasesLockAfterSettle", func(t *testing.T) {
		svc, _, locker, _ := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(24*time.Hour))
		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayAlipay})
		require.NoError(t, err)

		_, err = svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"token-1"}, locker.released)
		assert.Empty(t, locker.held)
	})

	t.Run("ReleasesOnlyItsOwnLock", func(t *testing.T) {
		svc, store, locker, _ := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(24*time.Hour))
		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayAlipay})
		require.NoError(t, err)
		name := "payment:" + payment.OrderNumber

		// The lock expires mid-settlement and another instance takes it.
		var other string
		store.beforeSettle = func() {
			locker.expire(name)
			other, _, _ = locker.Lock(ctx, name, time.Minute)
		}

		paid, err := svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentPaid, paid.Status)
		assert.Equal(t, other, locker.held[name])
		assert.Empty(t, locker.released)
	})

	t.Run("FailureLeavesBillUnpaid", func(t *testing.T) {
		svc, store, _, _ := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(24*time.Hour))
		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayAlipay})
		require.NoError(t, err)

		failed, err := svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: false})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentFailed, failed.Status)

		stored, err := store.GetBill(ctx, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BillPending, stored.Status)

		_, err = svc.RefundPayment(ctx, staff, payment.OrderNumber)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})

	t.Run("ResidentCannotSettle", func(t *testing.T) {
		svc, _, _, _ := setupPaymentService(t)
		bill := newBill(t, svc, 101, clock.Add(24*time.Hour))
		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayAlipay})
		require.NoError(t, err)

		_, err = svc.SettlePayment(ctx, resident, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	})

	t.Run("PaysMerchantOrder", func(t *testing.T) {
		svc, store, _, _ := setupPaymentService(t)
		order := &model.MerchantOrder{OrderNumber: "M1", UserID: resident.ID, TotalCents: 5000, Status: model.MerchantOrderPending}
		store.orders.insert(order, func(o *model.MerchantOrder, id uint) { o.ID = id })

		payment, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{MerchantOrderID: &order.ID, Gateway: model.GatewayWechat})
		require.NoError(t, err)
		_, err = svc.SettlePayment(ctx, staff, payment.OrderNumber, model.SettlePaymentRequest{Success: true})
		require.NoError(t, err)

		stored, err := store.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MerchantOrderPaid, stored.Status)

		refunded, err := svc.RefundPayment(ctx, staff, payment.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentRefunded, refunded.Status)
	})
}

func TestCreatePaymentChecks(t *testing.T) {
	svc, _, _, _ := setupPaymentService(t)
	ctx := context.Background()
	bill := newBill(t, svc, 201, clock.Add(24*time.Hour))

	_, err := svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{BillID: &bill.ID, Gateway: model.GatewayWechat})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.CreatePayment(ctx, resident, model.CreatePaymentRequest{Gateway: model.GatewayWechat})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidPaymentData)
}
