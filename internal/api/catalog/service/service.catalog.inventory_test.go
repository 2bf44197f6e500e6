package services

import (
	"context"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hok_commerce/internal/common"
)

// memoryStockStore là StockStore in-memory cho test
type memoryStockStore struct {
	mu     sync.Mutex
	stocks map[primitive.ObjectID]map[string]int64
}

func newMemoryStockStore() *memoryStockStore {
	return &memoryStockStore{stocks: make(map[primitive.ObjectID]map[string]int64)}
}

func (s *memoryStockStore) setStock(productID primitive.ObjectID, size string, stock int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stocks[productID] == nil {
		s.stocks[productID] = make(map[string]int64)
	}
	s.stocks[productID][size] = stock
}

func (s *memoryStockStore) getStock(productID primitive.ObjectID, size string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stocks[productID][size]
}

func (s *memoryStockStore) Decrease(_ context.Context, productID primitive.ObjectID, size string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes, ok := s.stocks[productID]
	if !ok {
		return common.ErrProductNotFound
	}
	stock, ok := sizes[size]
	if !ok {
		return common.ErrSizeNotFound
	}
	if stock < quantity {
		return common.ErrInsufficientStock
	}
	sizes[size] = stock - quantity
	return nil
}

func (s *memoryStockStore) Increase(_ context.Context, productID primitive.ObjectID, size string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes, ok := s.stocks[productID]
	if !ok {
		return common.ErrProductNotFound
	}
	if _, ok := sizes[size]; !ok {
		return common.ErrSizeNotFound
	}
	sizes[size] += quantity
	return nil
}

func TestApplyTransition_DecreaseThenIncreaseRestoresStock(t *testing.T) {
	store := newMemoryStockStore()
	shirt := primitive.NewObjectID()
	store.setStock(shirt, "M", 5)

	svc := NewInventoryServiceWithStore(store)
	ctx := context.Background()
	items := []StockItem{{ProductID: shirt, Size: "M", Quantity: 3}}

	if err := svc.ApplyTransition(ctx, items, DirectionDecrease); err != nil {
		t.Fatalf("Decrease lỗi: %v", err)
	}
	if got := store.getStock(shirt, "M"); got != 2 {
		t.Errorf("Stock sau decrease = %d, muốn 2", got)
	}

	if err := svc.ApplyTransition(ctx, items, DirectionIncrease); err != nil {
		t.Fatalf("Increase lỗi: %v", err)
	}
	if got := store.getStock(shirt, "M"); got != 5 {
		t.Errorf("Stock sau increase = %d, muốn 5 (trở về ban đầu)", got)
	}
}

func TestApplyTransition_InsufficientStockChangesNothing(t *testing.T) {
	store := newMemoryStockStore()
	shirt := primitive.NewObjectID()
	store.setStock(shirt, "M", 5)

	svc := NewInventoryServiceWithStore(store)
	items := []StockItem{{ProductID: shirt, Size: "M", Quantity: 10}}

	err := svc.ApplyTransition(context.Background(), items, DirectionDecrease)
	if err == nil {
		t.Fatal("Decrease vượt tồn kho phải trả về lỗi")
	}
	if !isStockError(err, common.ErrInsufficientStock) {
		t.Errorf("Lỗi phải là InsufficientStock, nhận: %v", err)
	}
	if got := store.getStock(shirt, "M"); got != 5 {
		t.Errorf("Stock sau lỗi = %d, muốn 5 (không đổi)", got)
	}
}

func TestApplyTransition_FailureRollsBackAppliedItems(t *testing.T) {
	store := newMemoryStockStore()
	shirt := primitive.NewObjectID()
	pants := primitive.NewObjectID()
	store.setStock(shirt, "M", 5)
	store.setStock(pants, "L", 1)

	svc := NewInventoryServiceWithStore(store)
	items := []StockItem{
		{ProductID: shirt, Size: "M", Quantity: 3}, // đủ hàng, sẽ áp dụng trước
		{ProductID: pants, Size: "L", Quantity: 2}, // thiếu hàng, gây lỗi
	}

	err := svc.ApplyTransition(context.Background(), items, DirectionDecrease)
	if err == nil {
		t.Fatal("Transition có dòng thiếu hàng phải trả về lỗi")
	}

	if got := store.getStock(shirt, "M"); got != 5 {
		t.Errorf("Dòng đã áp dụng phải được hoàn tác: stock = %d, muốn 5", got)
	}
	if got := store.getStock(pants, "L"); got != 1 {
		t.Errorf("Dòng thất bại không được thay đổi: stock = %d, muốn 1", got)
	}
}

func TestApplyTransition_ErrorIdentifiesFailingItem(t *testing.T) {
	store := newMemoryStockStore()
	shirt := primitive.NewObjectID()
	store.setStock(shirt, "M", 5)

	svc := NewInventoryServiceWithStore(store)
	missing := primitive.NewObjectID()
	items := []StockItem{
		{ProductID: shirt, Size: "M", Quantity: 1},
		{ProductID: missing, Size: "M", Quantity: 1},
	}

	err := svc.ApplyTransition(context.Background(), items, DirectionDecrease)
	if err == nil {
		t.Fatal("Sản phẩm không tồn tại phải trả về lỗi")
	}
	if !isStockError(err, common.ErrProductNotFound) {
		t.Errorf("Lỗi phải là ProductNotFound, nhận: %v", err)
	}

	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("Lỗi phải là *common.Error, nhận %T", err)
	}
	details, ok := appErr.Details.(map[string]interface{})
	if !ok {
		t.Fatal("Details phải chứa thông tin dòng hàng thất bại")
	}
	if details["itemIndex"] != 1 {
		t.Errorf("itemIndex = %v, muốn 1", details["itemIndex"])
	}
	if details["productId"] != missing.Hex() {
		t.Errorf("productId = %v, muốn %s", details["productId"], missing.Hex())
	}
}

func TestApplyTransition_SizeNotFound(t *testing.T) {
	store := newMemoryStockStore()
	shirt := primitive.NewObjectID()
	store.setStock(shirt, "M", 5)

	svc := NewInventoryServiceWithStore(store)
	items := []StockItem{{ProductID: shirt, Size: "XXL", Quantity: 1}}

	err := svc.ApplyTransition(context.Background(), items, DirectionDecrease)
	if !isStockError(err, common.ErrSizeNotFound) {
		t.Errorf("Lỗi phải là SizeNotFound, nhận: %v", err)
	}
	if got := store.getStock(shirt, "M"); got != 5 {
		t.Errorf("Stock = %d, muốn 5 (không đổi)", got)
	}
}

func TestApplyTransition_InvalidInput(t *testing.T) {
	svc := NewInventoryServiceWithStore(newMemoryStockStore())
	ctx := context.Background()
	item := StockItem{ProductID: primitive.NewObjectID(), Size: "M", Quantity: 1}

	if err := svc.ApplyTransition(ctx, []StockItem{item}, Direction("sideways")); err == nil {
		t.Error("Chiều không hợp lệ phải trả về lỗi")
	}
	if err := svc.ApplyTransition(ctx, nil, DirectionDecrease); err == nil {
		t.Error("Danh sách rỗng phải trả về lỗi")
	}

	item.Quantity = 0
	if err := svc.ApplyTransition(ctx, []StockItem{item}, DirectionDecrease); err == nil {
		t.Error("Số lượng 0 phải trả về lỗi")
	}
}

// isStockError so khớp lỗi theo mã và message (Details có thể khác nhau)
func isStockError(err error, target error) bool {
	appErr, ok := err.(*common.Error)
	if !ok {
		return false
	}
	targetErr, ok := target.(*common.Error)
	if !ok {
		return false
	}
	return appErr.Code.Code == targetErr.Code.Code && appErr.Message == targetErr.Message
}
