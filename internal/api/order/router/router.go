// Package router đăng ký route của module order.
package router

import (
	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/order/handler"
	baserouter "hok_commerce/internal/api/router"
)

// Register đăng ký route order vào group /api/v1
func Register(v1 fiber.Router, r *baserouter.Router) error {
	orderHandler := handler.NewOrderHandler()
	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, baserouter.ReadWriteConfig)

	// Các endpoint nghiệp vụ ngoài CRUD chuẩn
	baserouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/status/:id", nil, orderHandler.UpdateStatus)
	baserouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/list", nil, orderHandler.List)
	baserouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/counts", nil, orderHandler.GetCounts)

	return nil
}
