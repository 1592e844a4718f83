package admin

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrPaymentNotPending     = errors.New("payment is not awaiting confirmation")
	ErrNothingToExport       = errors.New("nothing to export")
	ErrUnknownExportEntity   = errors.New("unknown export entity")
)
