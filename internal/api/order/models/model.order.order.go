// Package models chứa model của module order (đơn hàng shop).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các trạng thái đơn hàng. Đơn mới luôn bắt đầu ở pending;
// delivered và cancelled là trạng thái kết thúc.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// PaymentMethodCOD là thanh toán khi nhận hàng: đơn delivered
// được tự động đánh dấu đã thanh toán.
const PaymentMethodCOD = "cod"

// OrderCustomer là thông tin người nhận
type OrderCustomer struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// OrderDelivery là thông tin giao hàng
type OrderDelivery struct {
	Type string  `json:"type" bson:"type"`
	Cost float64 `json:"cost" bson:"cost"`
}

// OrderPayment là thông tin thanh toán
type OrderPayment struct {
	Method string  `json:"method" bson:"method"`
	Amount float64 `json:"amount" bson:"amount"`
	Paid   bool    `json:"paid" bson:"paid"`
}

// OrderItem là một dòng hàng trong đơn
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Size     string             `json:"size" bson:"size"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int64              `json:"quantity" bson:"quantity"`
}

// OrderStatus là trạng thái hiện tại của đơn kèm các mốc thời gian
type OrderStatus struct {
	Type              string `json:"type" bson:"type"`
	OrderDate         int64  `json:"orderDate" bson:"orderDate"`
	OrderDeliveryDate int64  `json:"orderDeliveryDate,omitempty" bson:"orderDeliveryDate,omitempty"`
}

// Order là đơn hàng của shop.
// OrderNo là bất biến sau khi gán và unique nhờ index; việc cấp số
// đi qua sequence allocator.
type Order struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNo   string             `json:"orderNo" bson:"orderNo" index:"unique"`
	Customer  OrderCustomer      `json:"customer" bson:"customer"`
	Delivery  OrderDelivery      `json:"delivery" bson:"delivery"`
	Payment   OrderPayment       `json:"payment" bson:"payment"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
	Total     float64            `json:"total" bson:"total"`
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`
	Status    OrderStatus        `json:"status" bson:"status"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrderCounts là số lượng đơn theo từng trạng thái (cho dashboard admin)
type OrderCounts struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}
