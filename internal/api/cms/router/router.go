// Package router đăng ký route của module cms.
package router

import (
	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/api/cms/handler"
	baserouter "hok_commerce/internal/api/router"
)

// Register đăng ký route cms vào group /api/v1
func Register(v1 fiber.Router, r *baserouter.Router) error {
	r.RegisterCRUDRoutes(v1, "/cms/sliders", handler.NewSliderHandler(), baserouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/cms/stories", handler.NewStoryHandler(), baserouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/cms/footers", handler.NewFooterHandler(), baserouter.ReadWriteConfig)
	return nil
}
