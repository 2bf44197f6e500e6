// Package dto chứa các cấu trúc đầu vào của module shipping.
package dto

// ShipmentCreateInput là yêu cầu tạo vận đơn Pathao từ admin
type ShipmentCreateInput struct {
	MerchantOrderID    string  `json:"merchantOrderId,omitempty"`
	RecipientName      string  `json:"recipientName" validate:"required"`
	RecipientPhone     string  `json:"recipientPhone" validate:"required"`
	RecipientAddress   string  `json:"recipientAddress" validate:"required"`
	RecipientCity      int64   `json:"recipientCity" validate:"required,gt=0"`
	RecipientZone      int64   `json:"recipientZone" validate:"required,gt=0"`
	RecipientArea      int64   `json:"recipientArea,omitempty" validate:"omitempty,gt=0"`
	DeliveryType       int64   `json:"deliveryType" validate:"required,gt=0"`
	ItemType           int64   `json:"itemType" validate:"required,gt=0"`
	SpecialInstruction string  `json:"specialInstruction,omitempty"`
	ItemQuantity       int64   `json:"itemQuantity" validate:"required,gt=0"`
	ItemWeight         float64 `json:"itemWeight" validate:"required,gt=0"`
	ItemDescription    string  `json:"itemDescription,omitempty"`
	AmountToCollect    float64 `json:"amountToCollect" validate:"gte=0"`
}
