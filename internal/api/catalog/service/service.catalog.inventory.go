// Package services chứa service của module catalog: CRUD sản phẩm và
// chuyển dịch tồn kho (inventory ledger).
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	catalogmodels "hok_commerce/internal/api/catalog/models"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
	"hok_commerce/internal/logger"
)

// Direction là chiều chuyển dịch tồn kho
type Direction string

const (
	// DirectionDecrease trừ tồn kho (đơn hàng chuyển sang processing)
	DirectionDecrease Direction = "decrease"
	// DirectionIncrease cộng trả tồn kho (đơn hàng processing bị hủy)
	DirectionIncrease Direction = "increase"
)

// Opposite trả về chiều ngược lại (dùng khi hoàn tác)
func (d Direction) Opposite() Direction {
	if d == DirectionDecrease {
		return DirectionIncrease
	}
	return DirectionDecrease
}

// StockItem là một dòng hàng cần điều chỉnh tồn kho
type StockItem struct {
	ProductID primitive.ObjectID
	Size      string
	Quantity  int64
}

// StockStore điều chỉnh tồn kho của một size sản phẩm.
// Hiện thực chính là MongoStockStore; test dùng store in-memory.
// Cả hai thao tác phải atomic trên từng dòng hàng: Decrease không bao giờ
// đưa stock xuống âm, kể cả khi có request đồng thời.
type StockStore interface {
	Decrease(ctx context.Context, productID primitive.ObjectID, size string, quantity int64) error
	Increase(ctx context.Context, productID primitive.ObjectID, size string, quantity int64) error
}

// MongoStockStore điều chỉnh tồn kho bằng update có điều kiện trên
// phần tử mảng sizes ($elemMatch + $inc), atomic phía server.
type MongoStockStore struct {
	collection *mongo.Collection
}

// NewMongoStockStore tạo store trên collection products
func NewMongoStockStore(collection *mongo.Collection) *MongoStockStore {
	return &MongoStockStore{collection: collection}
}

// Decrease trừ tồn kho nếu và chỉ nếu còn đủ hàng.
// Filter $gte bảo đảm stock không bao giờ âm: nếu không khớp thì không
// có gì thay đổi, sau đó mới chẩn đoán nguyên nhân cụ thể.
func (s *MongoStockStore) Decrease(ctx context.Context, productID primitive.ObjectID, size string, quantity int64) error {
	filter := bson.M{
		"_id": productID,
		"sizes": bson.M{
			"$elemMatch": bson.M{
				"size":  size,
				"stock": bson.M{"$gte": quantity},
			},
		},
	}
	update := bson.M{"$inc": bson.M{"sizes.$.stock": -quantity}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.ModifiedCount == 0 {
		return s.diagnose(ctx, productID, size)
	}
	return nil
}

// Increase cộng trả tồn kho cho size đã tồn tại
func (s *MongoStockStore) Increase(ctx context.Context, productID primitive.ObjectID, size string, quantity int64) error {
	filter := bson.M{"_id": productID, "sizes.size": size}
	update := bson.M{"$inc": bson.M{"sizes.$.stock": quantity}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.ModifiedCount == 0 {
		return s.diagnose(ctx, productID, size)
	}
	return nil
}

// diagnose phân loại lý do update không khớp: sản phẩm không tồn tại,
// size không tồn tại, hay tồn kho không đủ
func (s *MongoStockStore) diagnose(ctx context.Context, productID primitive.ObjectID, size string) error {
	var product catalogmodels.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrProductNotFound
		}
		return common.ConvertMongoError(err)
	}

	for _, ps := range product.Sizes {
		if ps.Size == size {
			return common.ErrInsufficientStock
		}
	}
	return common.ErrSizeNotFound
}

// InventoryService thực hiện chuyển dịch tồn kho all-or-nothing trên
// một danh sách dòng hàng
type InventoryService struct {
	store StockStore
}

// NewInventoryService tạo service trên collection products đã đăng ký
func NewInventoryService() *InventoryService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Products)
	return &InventoryService{store: NewMongoStockStore(collection)}
}

// NewInventoryServiceWithStore tạo service với store tùy chọn (dùng trong test)
func NewInventoryServiceWithStore(store StockStore) *InventoryService {
	return &InventoryService{store: store}
}

// ApplyTransition áp dụng chuyển dịch tồn kho cho tất cả dòng hàng.
// Nếu một dòng thất bại, các dòng đã áp dụng trước đó được hoàn tác theo
// thứ tự ngược lại với chiều ngược lại, sau đó lỗi của dòng thất bại
// được trả về kèm thông tin dòng đó. Kết quả: hoặc tất cả thay đổi,
// hoặc không gì thay đổi.
func (s *InventoryService) ApplyTransition(ctx context.Context, items []StockItem, direction Direction) error {
	if direction != DirectionDecrease && direction != DirectionIncrease {
		return common.NewError(common.ErrCodeBusinessOperation, "Chiều chuyển dịch không hợp lệ: "+string(direction), common.StatusBadRequest, nil)
	}
	if len(items) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Danh sách dòng hàng không được rỗng", common.StatusBadRequest, nil)
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return common.NewError(common.ErrCodeValidationInput, "Số lượng phải lớn hơn 0", common.StatusBadRequest, itemDetails(i, item))
		}
	}

	for i, item := range items {
		if err := s.apply(ctx, item, direction); err != nil {
			s.rollback(ctx, items[:i], direction)
			return attachItemDetails(err, i, item)
		}
	}
	return nil
}

// apply điều chỉnh một dòng hàng theo chiều cho trước
func (s *InventoryService) apply(ctx context.Context, item StockItem, direction Direction) error {
	if direction == DirectionDecrease {
		return s.store.Decrease(ctx, item.ProductID, item.Size, item.Quantity)
	}
	return s.store.Increase(ctx, item.ProductID, item.Size, item.Quantity)
}

// rollback hoàn tác các dòng đã áp dụng theo thứ tự ngược lại.
// Lỗi hoàn tác chỉ được log: lỗi gốc của dòng thất bại quan trọng hơn
// với caller, và hoàn tác Increase trên dữ liệu vừa Decrease thành công
// thì không có lý do nghiệp vụ để thất bại.
func (s *InventoryService) rollback(ctx context.Context, applied []StockItem, direction Direction) {
	opposite := direction.Opposite()
	for i := len(applied) - 1; i >= 0; i-- {
		if err := s.apply(ctx, applied[i], opposite); err != nil {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"productId": applied[i].ProductID.Hex(),
				"size":      applied[i].Size,
				"quantity":  applied[i].Quantity,
				"error":     err.Error(),
			}).Error("Hoàn tác tồn kho thất bại")
		}
	}
}

// itemDetails tạo map chi tiết dòng hàng cho Details của lỗi
func itemDetails(index int, item StockItem) map[string]interface{} {
	return map[string]interface{}{
		"itemIndex": index,
		"productId": item.ProductID.Hex(),
		"size":      item.Size,
		"quantity":  item.Quantity,
	}
}

// attachItemDetails giữ nguyên phân loại lỗi nhưng gắn thêm thông tin
// dòng hàng thất bại để client biết dòng nào gây lỗi
func attachItemDetails(err error, index int, item StockItem) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return common.NewError(appErr.Code, appErr.Message, appErr.StatusCode, itemDetails(index, item))
	}
	return common.NewError(common.ErrCodeBusinessStock, err.Error(), common.StatusInternalServerError, itemDetails(index, item))
}
