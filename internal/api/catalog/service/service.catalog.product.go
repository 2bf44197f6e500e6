package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "hok_commerce/internal/api/base/service"
	catalogmodels "hok_commerce/internal/api/catalog/models"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
)

// ProductService xử lý nghiệp vụ sản phẩm, nhúng CRUD chuẩn
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo service trên collection products đã đăng ký
func NewProductService() *ProductService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Products)
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}
}

// activeFilter bổ sung điều kiện loại trừ sản phẩm đã soft delete
func activeFilter(extra bson.M) bson.M {
	filter := bson.M{"statusId": bson.M{"$ne": catalogmodels.StatusDeleted}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// IsNameExist kiểm tra tên sản phẩm đã tồn tại chưa (phục vụ unique name)
func (s *ProductService) IsNameExist(ctx context.Context, name string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"name": name})
}

// Create chèn sản phẩm mới sau khi kiểm tra trùng tên
func (s *ProductService) Create(ctx context.Context, product catalogmodels.Product) (catalogmodels.Product, error) {
	exists, err := s.IsNameExist(ctx, product.Name)
	if err != nil {
		return catalogmodels.Product{}, err
	}
	if exists {
		return catalogmodels.Product{}, common.NewError(common.ErrCodeDatabaseQuery, "Tên sản phẩm đã tồn tại", common.StatusConflict, map[string]interface{}{"name": product.Name})
	}
	return s.InsertOne(ctx, product)
}

// FindByCategory trả về sản phẩm đang hoạt động theo category
func (s *ProductService) FindByCategory(ctx context.Context, category string) ([]catalogmodels.Product, error) {
	return s.Find(ctx, activeFilter(bson.M{"category": category}), nil)
}

// FindByPriceRange trả về sản phẩm đang hoạt động trong khoảng giá [min, max]
func (s *ProductService) FindByPriceRange(ctx context.Context, min, max float64) ([]catalogmodels.Product, error) {
	if min < 0 || (max > 0 && max < min) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Khoảng giá không hợp lệ", common.StatusBadRequest, map[string]interface{}{"min": min, "max": max})
	}

	priceCond := bson.M{"$gte": min}
	if max > 0 {
		priceCond["$lte"] = max
	}
	return s.Find(ctx, activeFilter(bson.M{"price": priceCond}), nil)
}

// FindBySize trả về sản phẩm đang hoạt động còn hàng ở size cho trước
func (s *ProductService) FindBySize(ctx context.Context, size string) ([]catalogmodels.Product, error) {
	filter := activeFilter(bson.M{
		"sizes": bson.M{
			"$elemMatch": bson.M{
				"size":  size,
				"stock": bson.M{"$gt": 0},
			},
		},
	})
	return s.Find(ctx, filter, nil)
}

// SoftDeleteById đánh dấu sản phẩm là đã xóa (statusId = 255)
func (s *ProductService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (catalogmodels.Product, error) {
	return s.UpdateById(ctx, id, bson.M{"statusId": catalogmodels.StatusDeleted})
}

// AddReview thêm đánh giá và cập nhật lại điểm trung bình của sản phẩm
func (s *ProductService) AddReview(ctx context.Context, id primitive.ObjectID, review catalogmodels.ProductReview) (catalogmodels.Product, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return catalogmodels.Product{}, err
	}

	review.CreatedAt = time.Now().UnixMilli()
	reviews := append(product.Reviews, review)

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	rating := sum / float64(len(reviews))

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set": bson.M{
			"rating":     rating,
			"numReviews": int64(len(reviews)),
		},
	}
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, options.FindOneAndUpdate().SetReturnDocument(options.After))
}
