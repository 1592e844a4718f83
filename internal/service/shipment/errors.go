package shipment

import "errors"

var (
	ErrShipmentNotFound       = errors.New("shipment not found")
	ErrForeignShipment        = errors.New("shipment belongs to another user")
	ErrEmptyTrackingNumber    = errors.New("empty tracking number")
	ErrTooFrequent            = errors.New("tracking was just requested, wait before retrying")
	ErrTrackingUpdateNotFound = errors.New("tracking update not found")
	ErrConflict               = errors.New("resource already exists")
)
