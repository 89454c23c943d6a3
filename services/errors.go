package services

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrInvalidStatus       = errors.New("unrecognized order status")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrVendorNotAuthorized = errors.New("vendor not associated with offer")
	ErrValidation          = errors.New("invalid input")
)
