// Package router đăng ký route của module catalog.
package router

import (
	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/catalog/handler"
	baserouter "hok_commerce/internal/api/router"
)

// Register đăng ký route catalog vào group /api/v1
func Register(v1 fiber.Router, r *baserouter.Router) error {
	productHandler := handler.NewProductHandler()
	r.RegisterCRUDRoutes(v1, "/catalog/products", productHandler, baserouter.ReadWriteConfig)

	// Các endpoint nghiệp vụ ngoài CRUD chuẩn
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/products", "GET", "/by-category/:category", nil, productHandler.FindByCategory)
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/products", "GET", "/by-price", nil, productHandler.FindByPriceRange)
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/products", "GET", "/by-size/:size", nil, productHandler.FindBySize)
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/products", "POST", "/reviews/:id", nil, productHandler.AddReview)
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/products", "PUT", "/soft-delete/:id", nil, productHandler.SoftDelete)

	inventoryHandler := handler.NewInventoryHandler()
	baserouter.RegisterRouteWithMiddleware(v1, "/catalog/inventory", "POST", "/apply-transition", nil, inventoryHandler.ApplyTransition)

	return nil
}
