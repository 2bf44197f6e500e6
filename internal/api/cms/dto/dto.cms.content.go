// Package dto chứa các cấu trúc đầu vào của module cms.
package dto

// SliderCreateInput là dữ liệu tạo slider
type SliderCreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images" validate:"required,min=1,max=3,dive,required"`
}

// SliderUpdateInput là dữ liệu cập nhật slider
type SliderUpdateInput struct {
	Title       *string  `json:"title,omitempty"`
	Subtitle    *string  `json:"subtitle,omitempty"`
	Description *string  `json:"description,omitempty"`
	Images      []string `json:"images,omitempty" validate:"omitempty,min=1,max=3,dive,required"`
}

// StoryCreateInput là dữ liệu tạo story
type StoryCreateInput struct {
	Title            string   `json:"title" validate:"required"`
	Subtitle         string   `json:"subtitle,omitempty"`
	Description      string   `json:"description,omitempty"`
	OtherDescription string   `json:"otherDescription,omitempty"`
	Images           []string `json:"images" validate:"required,min=1,max=3,dive,required"`
}

// StoryUpdateInput là dữ liệu cập nhật story
type StoryUpdateInput struct {
	Title            *string  `json:"title,omitempty"`
	Subtitle         *string  `json:"subtitle,omitempty"`
	Description      *string  `json:"description,omitempty"`
	OtherDescription *string  `json:"otherDescription,omitempty"`
	Images           []string `json:"images,omitempty" validate:"omitempty,min=1,max=3,dive,required"`
}

// FooterCreateInput là dữ liệu tạo footer
type FooterCreateInput struct {
	AddressOne          string   `json:"addressOne" validate:"required"`
	AddressTwo          string   `json:"addressTwo" validate:"required"`
	AddressThree        string   `json:"addressThree" validate:"required"`
	Phone               string   `json:"phone,omitempty"`
	PaymentMethodImages []string `json:"paymentMethodImages" validate:"required,min=1,dive,required"`
	Email               []string `json:"email" validate:"required,min=1,dive,email"`
}

// FooterUpdateInput là dữ liệu cập nhật footer
type FooterUpdateInput struct {
	AddressOne          *string  `json:"addressOne,omitempty"`
	AddressTwo          *string  `json:"addressTwo,omitempty"`
	AddressThree        *string  `json:"addressThree,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	PaymentMethodImages []string `json:"paymentMethodImages,omitempty" validate:"omitempty,min=1,dive,required"`
	Email               []string `json:"email,omitempty" validate:"omitempty,min=1,dive,email"`
}
