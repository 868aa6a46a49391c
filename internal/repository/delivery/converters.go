package delivery

import "marketplace/internal/entities"

func ToDomain(d *DeliveryRequestDB) *entities.DeliveryRequest {
	if d == nil {
		return nil
	}
	return &entities.DeliveryRequest{
		ID:              d.ID,
		OrderID:         d.OrderID,
		PartnerID:       d.PartnerID,
		VendorID:        d.VendorID,
		Status:          entities.DeliveryStatusType(d.Status),
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Fee:             d.Fee,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToDomainList(models []DeliveryRequestDB) []entities.DeliveryRequest {
	result := make([]entities.DeliveryRequest, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}

func FromDomainModify(d *entities.DeliveryRequestModify) *DeliveryRequestModifyDB {
	if d == nil {
		return nil
	}
	modifyDB := &DeliveryRequestModifyDB{
		OrderID:         d.OrderID,
		PartnerID:       d.PartnerID,
		VendorID:        d.VendorID,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Fee:             d.Fee,
		Notes:           d.Notes,
	}
	if d.Status != nil {
		status := d.Status.String()
		modifyDB.Status = &status
	}
	return modifyDB
}
