// Package handler chứa handler HTTP của module order.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "hok_commerce/internal/api/base/handler"
	"hok_commerce/internal/api/order/dto"
	ordermodels "hok_commerce/internal/api/order/models"
	services "hok_commerce/internal/api/order/service"
	"hok_commerce/internal/utility"
)

// OrderHandler xử lý các API đơn hàng, nhúng CRUD chuẩn
type OrderHandler struct {
	*basehdl.BaseHandler[ordermodels.Order, dto.OrderCreateInput, dto.OrderUpdateInput]
	OrderService *services.OrderService
}

// NewOrderHandler khởi tạo OrderHandler
func NewOrderHandler() *OrderHandler {
	svc := services.NewOrderService()
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[ordermodels.Order, dto.OrderCreateInput, dto.OrderUpdateInput](svc),
		OrderService: svc,
	}
}

// orderFromCreateInput dựng model từ input đã validate.
// OrderNo, status, subtotal, total do service gán, không nhận từ client.
func orderFromCreateInput(input *dto.OrderCreateInput) (ordermodels.Order, error) {
	items := make([]ordermodels.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		productID, err := utility.String2ObjectID(item.Product)
		if err != nil {
			return ordermodels.Order{}, err
		}
		items = append(items, ordermodels.OrderItem{
			Product:  productID,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return ordermodels.Order{
		Customer: ordermodels.OrderCustomer{
			Name:    input.Customer.Name,
			Phone:   input.Customer.Phone,
			Address: input.Customer.Address,
		},
		Delivery: ordermodels.OrderDelivery{
			Type: input.Delivery.Type,
			Cost: input.Delivery.Cost,
		},
		Payment: ordermodels.OrderPayment{
			Method: input.Payment.Method,
			Amount: input.Payment.Amount,
		},
		Items: items,
		Note:  input.Note,
	}, nil
}

// InsertOne tạo đơn hàng mới với orderNo do allocator cấp.
// Ghi đè InsertOne của BaseHandler để đi qua OrderService.Create.
func (h *OrderHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		order, err := orderFromCreateInput(&input)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.OrderService.Create(c.Context(), order)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateStatus xử lý PUT /status/:id: chuyển trạng thái đơn hàng,
// điều chỉnh tồn kho nếu lần chuyển yêu cầu
func (h *OrderHandler) UpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		var input dto.OrderStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.OrderService.UpdateStatus(c.Context(), id, input.Status)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// List xử lý GET /list?status=&search=&page=&limit=
func (h *OrderHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.OrderService.List(c.Context(), c.Query("status"), c.Query("search"), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetCounts xử lý GET /counts: số đơn theo từng trạng thái
func (h *OrderHandler) GetCounts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.OrderService.GetCounts(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
