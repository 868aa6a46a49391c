package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	orderEntity := &entities.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		Status:          entities.OrderStatusType(o.Status),
		Payment:         entities.PaymentStatusType(o.PaymentStatus),
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Tax:             o.Tax,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.GatewayOrderID != nil {
		orderEntity.GatewayOrderID = *o.GatewayOrderID
	}
	if o.GatewayPaymentID != nil {
		orderEntity.GatewayPaymentID = *o.GatewayPaymentID
	}
	return orderEntity
}

func ToDomainList(models []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}

func ToItemDomain(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:         i.ID,
		OrderID:    i.OrderID,
		ProductID:  i.ProductID,
		SupplierID: i.SupplierID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}

func ToItemDomainList(models []OrderItemDB) []entities.OrderItem {
	result := make([]entities.OrderItem, 0, len(models))
	for i := range models {
		result = append(result, ToItemDomain(&models[i]))
	}
	return result
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	modifyDB := &OrderModifyDB{
		ID:               o.ID,
		GatewayOrderID:   o.GatewayOrderID,
		GatewayPaymentID: o.GatewayPaymentID,
	}
	if o.Status != nil {
		status := o.Status.String()
		modifyDB.Status = &status
	}
	if o.Payment != nil {
		payment := o.Payment.String()
		modifyDB.PaymentStatus = &payment
	}
	return modifyDB
}
