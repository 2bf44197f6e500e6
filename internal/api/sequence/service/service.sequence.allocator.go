// Package services chứa bộ cấp số thứ tự (sequence allocator) dùng cho
// orderNo, bookingNo và serialNo. Mọi nơi cần số định danh tăng dần đều
// đi qua allocator này thay vì quét giá trị lớn nhất hiện có rồi cộng 1
// (cách đó sinh số trùng khi có request đồng thời).
package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	seqmodels "hok_commerce/internal/api/sequence/models"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
)

// BookingSerialKey là partition key của bộ đếm serialNo toàn cục cho booking.
const BookingSerialKey = "booking:serial"

// CounterStore cấp giá trị kế tiếp cho một partition key.
// Hiện thực chính là MongoCounterStore; test dùng store in-memory.
type CounterStore interface {
	Next(ctx context.Context, partitionKey string) (int64, error)
}

// MongoCounterStore cấp số qua findOneAndUpdate $inc với upsert.
// Toàn bộ thao tác đọc-tăng-ghi nằm trong một lệnh atomic phía server,
// nên hai request đồng thời không bao giờ nhận cùng một giá trị.
type MongoCounterStore struct {
	collection *mongo.Collection
}

// NewMongoCounterStore tạo store trên collection counters
func NewMongoCounterStore(collection *mongo.Collection) *MongoCounterStore {
	return &MongoCounterStore{collection: collection}
}

// Next tăng bộ đếm của partition key và trả về giá trị mới.
// Lần cấp đầu tiên của một partition key trả về 1 (upsert tạo document).
func (s *MongoCounterStore) Next(ctx context.Context, partitionKey string) (int64, error) {
	filter := bson.M{"_id": partitionKey}
	update := bson.M{
		"$inc": bson.M{"value": 1},
		"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter seqmodels.SequenceCounter
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return counter.Value, nil
}

// AllocatorService cấp số thứ tự duy nhất theo partition key
type AllocatorService struct {
	store CounterStore
}

// NewAllocatorService tạo allocator trên collection counters đã đăng ký
func NewAllocatorService() *AllocatorService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Counters)
	return &AllocatorService{store: NewMongoCounterStore(collection)}
}

// NewAllocatorServiceWithStore tạo allocator với store tùy chọn (dùng trong test)
func NewAllocatorServiceWithStore(store CounterStore) *AllocatorService {
	return &AllocatorService{store: store}
}

// Allocate cấp giá trị kế tiếp cho partition key.
// Hai lần gọi không bao giờ trả về cùng giá trị trên cùng partition key.
func (s *AllocatorService) Allocate(ctx context.Context, partitionKey string) (int64, error) {
	if partitionKey == "" {
		return 0, common.NewError(common.ErrCodeBusinessSequence, "Partition key không được để trống", common.StatusBadRequest, nil)
	}

	value, err := s.store.Next(ctx, partitionKey)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeBusinessSequence,
			"Cấp phát số thứ tự thất bại",
			common.StatusInternalServerError,
			map[string]interface{}{"partitionKey": partitionKey, "cause": err.Error()},
		)
	}
	return value, nil
}

// OrderPartitionKey trả về partition key theo ngày cho đơn hàng
func OrderPartitionKey(t time.Time) string {
	return "order:" + t.Format("20060102")
}

// BookingPartitionKey trả về partition key theo ngày cho booking
func BookingPartitionKey(t time.Time) string {
	return "booking:" + t.Format("060102")
}

// FormatOrderNo ghép số đơn hàng: YYYYMMDD + 5 chữ số serial
func FormatOrderNo(t time.Time, seq int64) string {
	return fmt.Sprintf("%s%05d", t.Format("20060102"), seq)
}

// FormatBookingNo ghép số booking: YYMMDD + 2 chữ số serial
func FormatBookingNo(t time.Time, seq int64) string {
	return fmt.Sprintf("%s%02d", t.Format("060102"), seq)
}
