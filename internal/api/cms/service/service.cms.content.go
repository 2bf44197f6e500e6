// Package services chứa service của module cms. Nội dung trang chủ chỉ
// cần CRUD chuẩn nên các service là lớp mỏng trên BaseServiceMongo.
package services

import (
	basesvc "hok_commerce/internal/api/base/service"
	cmsmodels "hok_commerce/internal/api/cms/models"
	"hok_commerce/internal/global"
)

// SliderService xử lý CRUD slider
type SliderService struct {
	*basesvc.BaseServiceMongoImpl[cmsmodels.Slider]
}

// NewSliderService tạo service trên collection sliders đã đăng ký
func NewSliderService() *SliderService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Sliders)
	return &SliderService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[cmsmodels.Slider](collection)}
}

// StoryService xử lý CRUD story
type StoryService struct {
	*basesvc.BaseServiceMongoImpl[cmsmodels.Story]
}

// NewStoryService tạo service trên collection stories đã đăng ký
func NewStoryService() *StoryService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Stories)
	return &StoryService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[cmsmodels.Story](collection)}
}

// FooterService xử lý CRUD footer
type FooterService struct {
	*basesvc.BaseServiceMongoImpl[cmsmodels.Footer]
}

// NewFooterService tạo service trên collection footers đã đăng ký
func NewFooterService() *FooterService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Footers)
	return &FooterService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[cmsmodels.Footer](collection)}
}
