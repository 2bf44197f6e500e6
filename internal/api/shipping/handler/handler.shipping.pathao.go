// Package handler chứa handler HTTP của module shipping.
package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/middleware"
	"hok_commerce/internal/api/shipping/dto"
	services "hok_commerce/internal/api/shipping/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
)

// PathaoHandler xử lý API tạo vận đơn Pathao
type PathaoHandler struct {
	Service *services.PathaoService
}

// NewPathaoHandler khởi tạo PathaoHandler
func NewPathaoHandler() *PathaoHandler {
	return &PathaoHandler{Service: services.NewPathaoService()}
}

// CreateOrder xử lý POST /orders: tạo vận đơn trên Pathao
func (h *PathaoHandler) CreateOrder(c fiber.Ctx) error {
	var input dto.ShipmentCreateInput
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

	shipment := services.ShipmentRequest{
		MerchantOrderID:    input.MerchantOrderID,
		RecipientName:      input.RecipientName,
		RecipientPhone:     input.RecipientPhone,
		RecipientAddress:   input.RecipientAddress,
		RecipientCity:      input.RecipientCity,
		RecipientZone:      input.RecipientZone,
		RecipientArea:      input.RecipientArea,
		DeliveryType:       input.DeliveryType,
		ItemType:           input.ItemType,
		SpecialInstruction: input.SpecialInstruction,
		ItemQuantity:       input.ItemQuantity,
		ItemWeight:         input.ItemWeight,
		ItemDescription:    input.ItemDescription,
		AmountToCollect:    input.AmountToCollect,
	}

	data, err := h.Service.CreateOrder(c.Context(), shipment)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}

	return middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
