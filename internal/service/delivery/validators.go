package delivery

func validateRequestAction(requestID, partnerID int64) error {
	if requestID <= 0 {
		return ErrInvalidRequestID
	}
	if partnerID <= 0 {
		return ErrInvalidPartnerID
	}
	return nil
}
