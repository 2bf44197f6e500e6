// Package handler chứa handler HTTP của module catalog.
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "hok_commerce/internal/api/base/handler"
	"hok_commerce/internal/api/catalog/dto"
	catalogmodels "hok_commerce/internal/api/catalog/models"
	services "hok_commerce/internal/api/catalog/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/utility"
)

// ProductHandler xử lý các API của sản phẩm, nhúng CRUD chuẩn
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
	ProductService *services.ProductService
}

// NewProductHandler khởi tạo ProductHandler
func NewProductHandler() *ProductHandler {
	svc := services.NewProductService()
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Product, dto.ProductCreateInput, dto.ProductUpdateInput](svc),
		ProductService: svc,
	}
}

// productFromCreateInput dựng model từ input đã validate
func productFromCreateInput(input *dto.ProductCreateInput) catalogmodels.Product {
	sizes := make([]catalogmodels.ProductSize, 0, len(input.Sizes))
	for _, s := range input.Sizes {
		sizes = append(sizes, catalogmodels.ProductSize{
			Size:     s.Size,
			Chest:    s.Chest,
			Length:   s.Length,
			Sleeve:   s.Sleeve,
			Shoulder: s.Shoulder,
			Stock:    s.Stock,
		})
	}
	return catalogmodels.Product{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Images:        input.Images,
		Sizes:         sizes,
	}
}

// InsertOne tạo sản phẩm mới, kiểm tra trùng tên trước khi chèn.
// Ghi đè InsertOne của BaseHandler để đi qua ProductService.Create.
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.ProductService.Create(c.Context(), productFromCreateInput(&input))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByCategory xử lý GET /by-category/:category
func (h *ProductHandler) FindByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		category := c.Params("category")
		if category == "" {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Category không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.ProductService.FindByCategory(c.Context(), category)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByPriceRange xử lý GET /by-price?min=&max=
func (h *ProductHandler) FindByPriceRange(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		min, err := strconv.ParseFloat(c.Query("min", "0"), 64)
		if err != nil {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Giá min không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		max, err := strconv.ParseFloat(c.Query("max", "0"), 64)
		if err != nil {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Giá max không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.ProductService.FindByPriceRange(c.Context(), min, max)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindBySize xử lý GET /by-size/:size, chỉ trả sản phẩm còn hàng
func (h *ProductHandler) FindBySize(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		size := c.Params("size")
		if size == "" {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Size không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.ProductService.FindBySize(c.Context(), size)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// AddReview xử lý POST /reviews/:id
func (h *ProductHandler) AddReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		var input dto.ProductReviewInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		review := catalogmodels.ProductReview{
			Name:    input.Name,
			Rating:  input.Rating,
			Comment: input.Comment,
		}
		data, err := h.ProductService.AddReview(c.Context(), id, review)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// SoftDelete xử lý PUT /soft-delete/:id: ẩn sản phẩm thay vì xóa hẳn
func (h *ProductHandler) SoftDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.ProductService.SoftDeleteById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}
