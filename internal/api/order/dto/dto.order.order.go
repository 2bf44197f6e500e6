// Package dto chứa các cấu trúc đầu vào của module order.
package dto

// OrderCustomerInput là thông tin người nhận khi tạo đơn
type OrderCustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// OrderDeliveryInput là thông tin giao hàng khi tạo đơn
type OrderDeliveryInput struct {
	Type string  `json:"type,omitempty"`
	Cost float64 `json:"cost" validate:"gte=0"`
}

// OrderPaymentInput là thông tin thanh toán khi tạo đơn
type OrderPaymentInput struct {
	Method string  `json:"method" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// OrderItemInput là một dòng hàng khi tạo đơn
type OrderItemInput struct {
	Product  string  `json:"product" validate:"required,objectid"`
	Size     string  `json:"size" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
}

// OrderCreateInput là dữ liệu tạo đơn hàng. OrderNo và status không
// nhận từ client: số đơn do allocator cấp, trạng thái khởi tạo là pending.
type OrderCreateInput struct {
	Customer OrderCustomerInput `json:"customer" validate:"required"`
	Delivery OrderDeliveryInput `json:"delivery"`
	Payment  OrderPaymentInput  `json:"payment" validate:"required"`
	Items    []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	Note     string             `json:"note,omitempty"`
}

// OrderUpdateInput là dữ liệu cập nhật thông tin đơn (không gồm status/orderNo)
type OrderUpdateInput struct {
	Customer *OrderCustomerInput `json:"customer,omitempty"`
	Delivery *OrderDeliveryInput `json:"delivery,omitempty"`
	Note     *string             `json:"note,omitempty"`
}

// OrderStatusUpdateInput là yêu cầu chuyển trạng thái đơn hàng
type OrderStatusUpdateInput struct {
	Status string `json:"status" validate:"required,order_status"`
}
