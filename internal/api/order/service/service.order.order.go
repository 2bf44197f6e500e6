// Package services chứa service của module order: tạo đơn với số đơn
// do allocator cấp, chuyển trạng thái gắn với điều chỉnh tồn kho,
// tìm kiếm và thống kê đơn hàng.
package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "hok_commerce/internal/api/base/models"
	basesvc "hok_commerce/internal/api/base/service"
	catalogservices "hok_commerce/internal/api/catalog/service"
	ordermodels "hok_commerce/internal/api/order/models"
	seqservices "hok_commerce/internal/api/sequence/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
	"hok_commerce/internal/logger"
)

// maxCreateAttempts giới hạn số lần cấp lại orderNo khi đụng unique index.
// Xung đột chỉ xảy ra khi counter bị reset thủ công, nên vài lần là đủ.
const maxCreateAttempts = 5

// orderStore là phần persistence mà Create/UpdateStatus cần tới.
// Hiện thực chính là BaseServiceMongoImpl; test dùng store in-memory.
type orderStore interface {
	InsertOne(ctx context.Context, order ordermodels.Order) (ordermodels.Order, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (ordermodels.Order, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (ordermodels.Order, error)
}

// sequenceSource cấp số thứ tự theo partition key (AllocatorService)
type sequenceSource interface {
	Allocate(ctx context.Context, partitionKey string) (int64, error)
}

// stockLedger áp dụng chuyển dịch tồn kho all-or-nothing (InventoryService)
type stockLedger interface {
	ApplyTransition(ctx context.Context, items []catalogservices.StockItem, direction catalogservices.Direction) error
}

// OrderService xử lý nghiệp vụ đơn hàng, nhúng CRUD chuẩn
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
	store     orderStore
	allocator sequenceSource
	inventory stockLedger
}

// NewOrderService tạo service trên collection orders đã đăng ký
func NewOrderService() *OrderService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Orders)
	base := basesvc.NewBaseServiceMongo[ordermodels.Order](collection)
	return &OrderService{
		BaseServiceMongoImpl: base,
		store:                base,
		allocator:            seqservices.NewAllocatorService(),
		inventory:            catalogservices.NewInventoryService(),
	}
}

// NewOrderServiceWithStores tạo service với các phụ thuộc tùy chọn (dùng trong test)
func NewOrderServiceWithStores(store orderStore, allocator sequenceSource, inventory stockLedger) *OrderService {
	return &OrderService{store: store, allocator: allocator, inventory: inventory}
}

// Create cấp orderNo và chèn đơn mới ở trạng thái pending.
// Nếu chèn đụng unique index trên orderNo thì cấp số mới và thử lại
// (tối đa maxCreateAttempts lần, có backoff ngẫu nhiên giữa các lần).
// Mỗi lần thử tiêu thụ một giá trị sequence; khoảng trống là chấp nhận được.
func (s *OrderService) Create(ctx context.Context, order ordermodels.Order) (ordermodels.Order, error) {
	if len(order.Items) == 0 {
		return ordermodels.Order{}, common.NewError(common.ErrCodeValidationInput, "Đơn hàng phải có ít nhất một dòng hàng", common.StatusBadRequest, nil)
	}

	var subtotal float64
	for _, item := range order.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	order.Subtotal = subtotal
	order.Total = subtotal + order.Delivery.Cost
	if order.Payment.Method == "" {
		order.Payment.Method = ordermodels.PaymentMethodCOD
	}
	if order.Payment.Amount == 0 {
		order.Payment.Amount = order.Total
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		now := time.Now()
		seq, err := s.allocator.Allocate(ctx, seqservices.OrderPartitionKey(now))
		if err != nil {
			return ordermodels.Order{}, err
		}

		order.OrderNo = seqservices.FormatOrderNo(now, seq)
		order.Status = ordermodels.OrderStatus{
			Type:      ordermodels.StatusPending,
			OrderDate: now.UnixMilli(),
		}

		created, err := s.store.InsertOne(ctx, order)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, common.ErrMongoDuplicate) {
			return ordermodels.Order{}, err
		}

		lastErr = err
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"orderNo": order.OrderNo,
			"attempt": attempt + 1,
		}).Warn("OrderNo bị trùng, cấp số mới và thử lại")
		time.Sleep(time.Duration(attempt+1)*100*time.Millisecond + time.Duration(rand.Int63n(50))*time.Millisecond)
	}

	return ordermodels.Order{}, common.NewError(
		common.ErrCodeBusinessSequence,
		"Không cấp được orderNo duy nhất sau nhiều lần thử",
		common.StatusInternalServerError,
		map[string]interface{}{"attempts": maxCreateAttempts, "cause": lastErr.Error()},
	)
}

// UpdateStatus chuyển trạng thái đơn hàng. Nếu lần chuyển chạm tồn kho
// (xem TransitionDirection) thì điều chỉnh tồn kho trước; trạng thái mới
// chỉ được ghi khi điều chỉnh tồn kho thành công. Chuyển sang delivered
// ghi thêm ngày giao, và đánh dấu đã thanh toán nếu phương thức là COD.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, next string) (ordermodels.Order, error) {
	if !IsValidStatus(next) {
		return ordermodels.Order{}, common.NewError(common.ErrCodeBusinessStatus, "Trạng thái không hợp lệ: "+next, common.StatusBadRequest, nil)
	}

	order, err := s.store.FindOneById(ctx, id)
	if err != nil {
		return ordermodels.Order{}, err
	}

	prev := order.Status.Type
	if prev == next {
		return order, nil
	}
	if IsTerminalStatus(prev) {
		return ordermodels.Order{}, common.NewError(
			common.ErrCodeBusinessStatus,
			"Đơn hàng đã kết thúc, không thể chuyển trạng thái",
			common.StatusBadRequest,
			map[string]interface{}{"current": prev, "requested": next},
		)
	}

	direction, touchesStock := TransitionDirection(prev, next)
	if touchesStock {
		if err := s.inventory.ApplyTransition(ctx, stockItems(order), direction); err != nil {
			return ordermodels.Order{}, err
		}
	}

	set := bson.M{"status.type": next}
	if next == ordermodels.StatusDelivered {
		set["status.orderDeliveryDate"] = time.Now().UnixMilli()
		if order.Payment.Method == ordermodels.PaymentMethodCOD {
			set["payment.paid"] = true
		}
	}

	// Filter kèm trạng thái đã đọc: nếu một request khác đổi trạng thái
	// trong lúc này thì update không khớp và không ghi đè lên nhau
	updated, err := s.store.UpdateOne(ctx, bson.M{"_id": id, "status.type": prev}, bson.M{"$set": set})
	if err != nil {
		// Trạng thái không ghi được thì trả lại tồn kho đã điều chỉnh
		if touchesStock {
			if rbErr := s.inventory.ApplyTransition(ctx, stockItems(order), direction.Opposite()); rbErr != nil {
				logger.GetAppLogger().WithFields(map[string]interface{}{
					"orderId": id.Hex(),
					"error":   rbErr.Error(),
				}).Error("Hoàn tác tồn kho sau lỗi ghi trạng thái thất bại")
			}
		}
		if common.IsNotFound(err) {
			return ordermodels.Order{}, common.NewError(
				common.ErrCodeBusinessStatus,
				"Trạng thái đơn hàng đã bị thay đổi bởi request khác",
				common.StatusConflict,
				map[string]interface{}{"observed": prev, "requested": next},
			)
		}
		return ordermodels.Order{}, err
	}
	return updated, nil
}

// stockItems chuyển dòng hàng của đơn thành dòng điều chỉnh tồn kho
func stockItems(order ordermodels.Order) []catalogservices.StockItem {
	items := make([]catalogservices.StockItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, catalogservices.StockItem{
			ProductID: item.Product,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}
	return items
}

// List tìm đơn theo trạng thái và chuỗi tìm kiếm (tên, số điện thoại,
// orderNo), phân trang và sắp xếp mới nhất trước
func (s *OrderService) List(ctx context.Context, status, search string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	filter := bson.M{}
	if status != "" {
		if !IsValidStatus(status) {
			return nil, common.NewError(common.ErrCodeBusinessStatus, "Trạng thái không hợp lệ: "+status, common.StatusBadRequest, nil)
		}
		filter["status.type"] = status
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"customer.name": regex},
			{"customer.phone": regex},
			{"orderNo": regex},
		}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// facetCount hứng kết quả $count trong một nhánh $facet
type facetCount []struct {
	Count int64 `bson:"count"`
}

func (f facetCount) value() int64 {
	if len(f) == 0 {
		return 0
	}
	return f[0].Count
}

// GetCounts đếm đơn theo từng trạng thái trong một lần aggregate $facet
func (s *OrderService) GetCounts(ctx context.Context) (ordermodels.OrderCounts, error) {
	statusBranch := func(status string) []bson.M {
		return []bson.M{
			{"$match": bson.M{"status.type": status}},
			{"$count": "count"},
		}
	}
	pipeline := []bson.M{
		{"$facet": bson.M{
			"total":      []bson.M{{"$count": "count"}},
			"pending":    statusBranch(ordermodels.StatusPending),
			"processing": statusBranch(ordermodels.StatusProcessing),
			"shipped":    statusBranch(ordermodels.StatusShipped),
			"delivered":  statusBranch(ordermodels.StatusDelivered),
			"cancelled":  statusBranch(ordermodels.StatusCancelled),
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return ordermodels.OrderCounts{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total      facetCount `bson:"total"`
		Pending    facetCount `bson:"pending"`
		Processing facetCount `bson:"processing"`
		Shipped    facetCount `bson:"shipped"`
		Delivered  facetCount `bson:"delivered"`
		Cancelled  facetCount `bson:"cancelled"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return ordermodels.OrderCounts{}, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return ordermodels.OrderCounts{}, nil
	}

	r := results[0]
	return ordermodels.OrderCounts{
		Total:      r.Total.value(),
		Pending:    r.Pending.value(),
		Processing: r.Processing.value(),
		Shipped:    r.Shipped.value(),
		Delivered:  r.Delivered.value(),
		Cancelled:  r.Cancelled.value(),
	}, nil
}
