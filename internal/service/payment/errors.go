package payment

import "errors"

var (
	ErrDraftNotReady     = errors.New("draft has not reached the payment step")
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrMissingIntentID   = errors.New("missing payment intent id")
	ErrMissingProofURL   = errors.New("missing payment proof")
	ErrPaymentDeclined   = errors.New("payment was not completed")
	ErrPaidNotRecorded   = errors.New("payment captured but shipment was not recorded, contact support")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not awaiting confirmation")
)
