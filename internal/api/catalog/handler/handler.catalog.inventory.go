package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/catalog/dto"
	services "hok_commerce/internal/api/catalog/service"
	"hok_commerce/internal/api/middleware"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
	"hok_commerce/internal/utility"
)

// InventoryHandler xử lý API chuyển dịch tồn kho thủ công
type InventoryHandler struct {
	Service *services.InventoryService
}

// NewInventoryHandler khởi tạo InventoryHandler
func NewInventoryHandler() *InventoryHandler {
	return &InventoryHandler{Service: services.NewInventoryService()}
}

// ApplyTransition xử lý POST /apply-transition: áp dụng chuyển dịch tồn kho
// all-or-nothing cho một danh sách dòng hàng
func (h *InventoryHandler) ApplyTransition(c fiber.Ctx) error {
	var input dto.StockTransitionInput
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
		return nil
	}
	if global.Validate != nil {
		if err := global.Validate.Struct(&input); err != nil {
			middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
	}

	items := make([]services.StockItem, 0, len(input.Items))
	for _, item := range input.Items {
		productID, err := utility.String2ObjectID(item.Product)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		items = append(items, services.StockItem{
			ProductID: productID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	if err := h.Service.ApplyTransition(c.Context(), items, services.Direction(input.Direction)); err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}

	return middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"message": common.MsgSuccess,
		"data": fiber.Map{
			"direction": input.Direction,
			"items":     len(items),
		},
		"status": "success",
	})
}
