// Package dto chứa các cấu trúc đầu vào của module catalog.
package dto

// ProductSizeInput là một size khi tạo/cập nhật sản phẩm
type ProductSizeInput struct {
	Size     string  `json:"size" validate:"required"`
	Chest    float64 `json:"chest,omitempty"`
	Length   float64 `json:"length,omitempty"`
	Sleeve   float64 `json:"sleeve,omitempty"`
	Shoulder float64 `json:"shoulder,omitempty"`
	Stock    int64   `json:"stock" validate:"gte=0"`
}

// ProductCreateInput là dữ liệu tạo sản phẩm
type ProductCreateInput struct {
	Name          string             `json:"name" validate:"required,min=2,max=200"`
	Description   string             `json:"description,omitempty"`
	Category      string             `json:"category" validate:"required"`
	Price         float64            `json:"price" validate:"required,gt=0"`
	DiscountPrice float64            `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Images        []string           `json:"images,omitempty"`
	Sizes         []ProductSizeInput `json:"sizes" validate:"required,min=1,dive"`
}

// ProductUpdateInput là dữ liệu cập nhật sản phẩm (chỉ field có giá trị mới được cập nhật)
type ProductUpdateInput struct {
	Name          *string            `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description   *string            `json:"description,omitempty"`
	Category      *string            `json:"category,omitempty"`
	Price         *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountPrice *float64           `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Images        []string           `json:"images,omitempty"`
	Sizes         []ProductSizeInput `json:"sizes,omitempty" validate:"omitempty,min=1,dive"`
}

// ProductReviewInput là dữ liệu thêm đánh giá cho sản phẩm
type ProductReviewInput struct {
	Name    string  `json:"name" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment,omitempty"`
}

// StockTransitionItemInput là một dòng hàng trong yêu cầu chuyển dịch tồn kho
type StockTransitionItemInput struct {
	Product  string `json:"product" validate:"required,objectid"`
	Size     string `json:"size" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// StockTransitionInput là yêu cầu chuyển dịch tồn kho thủ công từ admin
type StockTransitionInput struct {
	Direction string                     `json:"direction" validate:"required,oneof=decrease increase"`
	Items     []StockTransitionItemInput `json:"items" validate:"required,min=1,dive"`
}
