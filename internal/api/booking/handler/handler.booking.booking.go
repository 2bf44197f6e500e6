// Package handler chứa handler HTTP của module booking.
package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "hok_commerce/internal/api/base/handler"
	"hok_commerce/internal/api/booking/dto"
	bookingmodels "hok_commerce/internal/api/booking/models"
	services "hok_commerce/internal/api/booking/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/utility"
)

// BookingHandler xử lý các API đặt phòng, nhúng CRUD chuẩn
type BookingHandler struct {
	*basehdl.BaseHandler[bookingmodels.Booking, dto.BookingCreateInput, dto.BookingUpdateInput]
	BookingService *services.BookingService
}

// NewBookingHandler khởi tạo BookingHandler
func NewBookingHandler() *BookingHandler {
	svc := services.NewBookingService()
	return &BookingHandler{
		BaseHandler:    basehdl.NewBaseHandler[bookingmodels.Booking, dto.BookingCreateInput, dto.BookingUpdateInput](svc),
		BookingService: svc,
	}
}

// bookingFromCreateInput dựng model từ input đã validate.
// BookingNo/serialNo/duePayment do service gán.
func bookingFromCreateInput(input *dto.BookingCreateInput) (bookingmodels.Booking, error) {
	checkIn, err := time.ParseInLocation("2006-01-02", input.CheckInDate, time.Local)
	if err != nil {
		return bookingmodels.Booking{}, common.NewError(common.ErrCodeValidationInput, "Ngày nhận phòng không hợp lệ", common.StatusBadRequest, nil)
	}
	checkOut, err := time.ParseInLocation("2006-01-02", input.CheckOutDate, time.Local)
	if err != nil {
		return bookingmodels.Booking{}, common.NewError(common.ErrCodeValidationInput, "Ngày trả phòng không hợp lệ", common.StatusBadRequest, nil)
	}
	if !checkOut.After(checkIn) {
		return bookingmodels.Booking{}, common.NewError(common.ErrCodeValidationInput, "Ngày trả phòng phải sau ngày nhận phòng", common.StatusBadRequest, nil)
	}

	return bookingmodels.Booking{
		FullName:    input.FullName,
		NidPassport: input.NidPassport,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,

		HotelName:        input.HotelName,
		HotelID:          input.HotelID,
		RoomCategoryID:   input.RoomCategoryID,
		RoomCategoryName: input.RoomCategoryName,
		RoomNumberID:     input.RoomNumberID,
		RoomNumberName:   input.RoomNumberName,
		RoomPrice:        input.RoomPrice,

		CheckInDate:  checkIn.UnixMilli(),
		CheckOutDate: checkOut.UnixMilli(),
		Nights:       input.Nights,
		Adults:       input.Adults,
		Children:     input.Children,

		TotalBill:      input.TotalBill,
		AdvancePayment: input.AdvancePayment,

		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Note:          input.Note,

		IsKitchen:         input.IsKitchen,
		KitchenTotalBill:  input.KitchenTotalBill,
		ExtraBed:          input.ExtraBed,
		ExtraBedTotalBill: input.ExtraBedTotalBill,

		BookedBy:   input.BookedBy,
		BookedByID: input.BookedByID,
		Reference:  input.Reference,
	}, nil
}

// InsertOne tạo booking mới với bookingNo/serialNo do allocator cấp.
// Ghi đè InsertOne của BaseHandler để đi qua BookingService.Create.
func (h *BookingHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BookingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		booking, err := bookingFromCreateInput(&input)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.BookingService.Create(c.Context(), booking)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Cancel xử lý PUT /cancel/:id: hủy booking (soft cancel)
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		var input dto.BookingCancelInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.BookingService.CancelById(c.Context(), id, input.CanceledBy)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByHotel xử lý POST /by-hotel: tra cứu booking theo khách sạn
func (h *BookingHandler) FindByHotel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BookingByHotelInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.BookingService.FindByHotelID(c.Context(), input.HotelID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByBookingNo xử lý GET /by-booking-no/:bookingNo
func (h *BookingHandler) FindByBookingNo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		bookingNo := c.Params("bookingNo")
		if bookingNo == "" {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "BookingNo không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.BookingService.FindByBookingNo(c.Context(), bookingNo)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByCheckInDate xử lý GET /check-in/:date: tình hình phòng của một ngày
func (h *BookingHandler) FindByCheckInDate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.BookingService.FindByCheckInDate(c.Context(), c.Params("date"))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateDetails xử lý PUT /details/:id: ghi nhận thanh toán theo ngày
func (h *BookingHandler) UpdateDetails(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		var input dto.BookingDetailsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.BookingService.UpdateDetails(c.Context(), id, input.SearchDate, input.TotalPaid, input.DailyAmount)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DailySummary xử lý GET /daily-summary/:date: tổng kết thu của một ngày
func (h *BookingHandler) DailySummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.BookingService.DailySummary(c.Context(), c.Params("date"))
		h.HandleResponse(c, data, err)
		return nil
	})
}
