// Package router đăng ký route của module shipping.
package router

import (
	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/shipping/handler"
	baserouter "hok_commerce/internal/api/router"
)

// Register đăng ký route shipping vào group /api/v1
func Register(v1 fiber.Router, _ *baserouter.Router) error {
	pathaoHandler := handler.NewPathaoHandler()
	baserouter.RegisterRouteWithMiddleware(v1, "/shipping/pathao", "POST", "/orders", nil, pathaoHandler.CreateOrder)
	return nil
}
