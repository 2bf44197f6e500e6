// Package models chứa model của module catalog (sản phẩm, tồn kho theo size).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StatusDeleted là quy ước soft delete: document bị ẩn khỏi các query
// mặc định nhưng vẫn giữ lại để tra cứu lịch sử.
const StatusDeleted = 255

// ProductSize là một size của sản phẩm kèm số đo và tồn kho.
// Stock không bao giờ âm; mọi thay đổi đi qua inventory service.
type ProductSize struct {
	Size     string  `json:"size" bson:"size" validate:"required"`
	Chest    float64 `json:"chest,omitempty" bson:"chest,omitempty"`
	Length   float64 `json:"length,omitempty" bson:"length,omitempty"`
	Sleeve   float64 `json:"sleeve,omitempty" bson:"sleeve,omitempty"`
	Shoulder float64 `json:"shoulder,omitempty" bson:"shoulder,omitempty"`
	Stock    int64   `json:"stock" bson:"stock" validate:"gte=0"`
}

// ProductReview là đánh giá của khách trên một sản phẩm
type ProductReview struct {
	Name      string  `json:"name" bson:"name"`
	Rating    float64 `json:"rating" bson:"rating"`
	Comment   string  `json:"comment" bson:"comment"`
	CreatedAt int64   `json:"createdAt" bson:"createdAt"`
}

// Product là sản phẩm của shop
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" index:"unique"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Category      string             `json:"category" bson:"category" index:"single"`
	Price         float64            `json:"price" bson:"price"`
	DiscountPrice float64            `json:"discountPrice,omitempty" bson:"discountPrice,omitempty"`
	Images        []string           `json:"images,omitempty" bson:"images,omitempty"`
	Sizes         []ProductSize      `json:"sizes" bson:"sizes"`
	Reviews       []ProductReview    `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Rating        float64            `json:"rating" bson:"rating"`
	NumReviews    int64              `json:"numReviews" bson:"numReviews"`
	StatusID      int                `json:"statusId" bson:"statusId"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
