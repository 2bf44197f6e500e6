// Package handler chứa handler HTTP của module cms. Cả ba loại nội dung
// dùng nguyên CRUD chuẩn của BaseHandler, không có endpoint riêng.
package handler

import (
	basehdl "hok_commerce/internal/api/base/handler"
	"hok_commerce/internal/api/cms/dto"
	cmsmodels "hok_commerce/internal/api/cms/models"
	services "hok_commerce/internal/api/cms/service"
)

// SliderHandler xử lý các API slider
type SliderHandler struct {
	*basehdl.BaseHandler[cmsmodels.Slider, dto.SliderCreateInput, dto.SliderUpdateInput]
}

// NewSliderHandler khởi tạo SliderHandler
func NewSliderHandler() *SliderHandler {
	return &SliderHandler{
		BaseHandler: basehdl.NewBaseHandler[cmsmodels.Slider, dto.SliderCreateInput, dto.SliderUpdateInput](services.NewSliderService()),
	}
}

// StoryHandler xử lý các API story
type StoryHandler struct {
	*basehdl.BaseHandler[cmsmodels.Story, dto.StoryCreateInput, dto.StoryUpdateInput]
}

// NewStoryHandler khởi tạo StoryHandler
func NewStoryHandler() *StoryHandler {
	return &StoryHandler{
		BaseHandler: basehdl.NewBaseHandler[cmsmodels.Story, dto.StoryCreateInput, dto.StoryUpdateInput](services.NewStoryService()),
	}
}

// FooterHandler xử lý các API footer
type FooterHandler struct {
	*basehdl.BaseHandler[cmsmodels.Footer, dto.FooterCreateInput, dto.FooterUpdateInput]
}

// NewFooterHandler khởi tạo FooterHandler
func NewFooterHandler() *FooterHandler {
	return &FooterHandler{
		BaseHandler: basehdl.NewBaseHandler[cmsmodels.Footer, dto.FooterCreateInput, dto.FooterUpdateInput](services.NewFooterService()),
	}
}
