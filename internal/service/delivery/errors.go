package delivery

import "errors"

var (
	ErrInvalidRequestID = errors.New("invalid delivery request id")
	ErrInvalidPartnerID = errors.New("invalid partner id")

	ErrRequestNotFoundOrProcessed = errors.New("delivery request not found or already processed")
)
