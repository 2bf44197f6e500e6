// Package models chứa model của module cms: nội dung trang chủ
// (slider, story, footer).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slider là một khối ảnh trình chiếu trên trang chủ (tối đa 3 ảnh)
type Slider struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Subtitle    string             `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Images      []string           `json:"images" bson:"images"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Story là một bài giới thiệu trên trang chủ (tối đa 3 ảnh)
type Story struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Subtitle         string             `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	OtherDescription string             `json:"otherDescription,omitempty" bson:"otherDescription,omitempty"`
	Images           []string           `json:"images" bson:"images"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// Footer là thông tin chân trang: địa chỉ, liên hệ và ảnh phương thức thanh toán
type Footer struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AddressOne          string             `json:"addressOne" bson:"addressOne"`
	AddressTwo          string             `json:"addressTwo" bson:"addressTwo"`
	AddressThree        string             `json:"addressThree" bson:"addressThree"`
	Phone               string             `json:"phone,omitempty" bson:"phone,omitempty"`
	PaymentMethodImages []string           `json:"paymentMethodImages" bson:"paymentMethodImages"`
	Email               []string           `json:"email" bson:"email"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt"`
}
