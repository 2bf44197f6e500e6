// Package router đăng ký route của module booking.
package router

import (
	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/booking/handler"
	baserouter "hok_commerce/internal/api/router"
)

// Register đăng ký route booking vào group /api/v1
func Register(v1 fiber.Router, r *baserouter.Router) error {
	bookingHandler := handler.NewBookingHandler()
	r.RegisterCRUDRoutes(v1, "/bookings", bookingHandler, baserouter.ReadWriteConfig)

	// Các endpoint nghiệp vụ ngoài CRUD chuẩn
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "PUT", "/cancel/:id", nil, bookingHandler.Cancel)
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "POST", "/by-hotel", nil, bookingHandler.FindByHotel)
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "GET", "/by-booking-no/:bookingNo", nil, bookingHandler.FindByBookingNo)
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "GET", "/check-in/:date", nil, bookingHandler.FindByCheckInDate)
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "PUT", "/details/:id", nil, bookingHandler.UpdateDetails)
	baserouter.RegisterRouteWithMiddleware(v1, "/bookings", "GET", "/daily-summary/:date", nil, bookingHandler.DailySummary)

	return nil
}
