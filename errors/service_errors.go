// api/errors/service_errors.go

package errors

import "errors"

var (
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInvalidWorkOrderData = errors.New("invalid work order data")

	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrInvalidComplaintData = errors.New("invalid complaint data")

	ErrVisitorPassNotFound    = errors.New("visitor pass not found")
	ErrInvalidVisitorPassData = errors.New("invalid visitor pass data")

	ErrAnnouncementNotFound    = errors.New("announcement not found")
	ErrInvalidAnnouncementData = errors.New("invalid announcement data")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrMerchantNotFound         = errors.New("merchant not found")
	ErrMerchantConflict         = errors.New("merchant conflict")
	ErrInvalidMerchantData      = errors.New("invalid merchant data")
	ErrMerchantServiceNotFound  = errors.New("merchant service not found")
	ErrMerchantOrderNotFound    = errors.New("merchant order not found")
	ErrInvalidMerchantOrderData = errors.New("invalid merchant order data")

	ErrBillNotFound       = errors.New("bill not found")
	ErrBillConflict       = errors.New("bill conflict")
	ErrInvalidBillData    = errors.New("invalid bill data")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidPaymentData = errors.New("invalid payment data")
	ErrPaymentInProgress  = errors.New("payment is being settled")
)
