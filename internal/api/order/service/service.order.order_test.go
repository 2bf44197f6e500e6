package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogservices "hok_commerce/internal/api/catalog/service"
	ordermodels "hok_commerce/internal/api/order/models"
	"hok_commerce/internal/common"
)

// memoryOrderStore giả lập persistence đơn hàng trong bộ nhớ.
// insertErrs là hàng đợi lỗi trả về cho các lần InsertOne kế tiếp.
type memoryOrderStore struct {
	orders      map[primitive.ObjectID]ordermodels.Order
	insertErrs  []error
	inserts     int
	updateErr   error
	updateCalls int
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{orders: make(map[primitive.ObjectID]ordermodels.Order)}
}

func (s *memoryOrderStore) InsertOne(_ context.Context, order ordermodels.Order) (ordermodels.Order, error) {
	s.inserts++
	if len(s.insertErrs) > 0 {
		err := s.insertErrs[0]
		s.insertErrs = s.insertErrs[1:]
		if err != nil {
			return ordermodels.Order{}, err
		}
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *memoryOrderStore) FindOneById(_ context.Context, id primitive.ObjectID) (ordermodels.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return ordermodels.Order{}, common.ErrNotFound
	}
	return order, nil
}

func (s *memoryOrderStore) UpdateOne(_ context.Context, filter interface{}, update interface{}) (ordermodels.Order, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return ordermodels.Order{}, s.updateErr
	}

	f := filter.(bson.M)
	id := f["_id"].(primitive.ObjectID)
	order, ok := s.orders[id]
	if !ok || order.Status.Type != f["status.type"].(string) {
		return ordermodels.Order{}, common.ErrNotFound
	}

	set := update.(bson.M)["$set"].(bson.M)
	order.Status.Type = set["status.type"].(string)
	if v, ok := set["status.orderDeliveryDate"]; ok {
		order.Status.OrderDeliveryDate = v.(int64)
	}
	if v, ok := set["payment.paid"]; ok {
		order.Payment.Paid = v.(bool)
	}
	s.orders[id] = order
	return order, nil
}

// fakeAllocator cấp số tăng dần và ghi lại các partition key được yêu cầu
type fakeAllocator struct {
	next int64
	keys []string
}

func (a *fakeAllocator) Allocate(_ context.Context, partitionKey string) (int64, error) {
	a.next++
	a.keys = append(a.keys, partitionKey)
	return a.next, nil
}

// ledgerCall ghi lại một lần gọi ApplyTransition
type ledgerCall struct {
	items     []catalogservices.StockItem
	direction catalogservices.Direction
}

// fakeLedger ghi lại các lần chuyển dịch; failOn/failErr giả lập lỗi
// cho một chiều chuyển dịch nhất định
type fakeLedger struct {
	failOn  catalogservices.Direction
	failErr error
	calls   []ledgerCall
}

func (l *fakeLedger) ApplyTransition(_ context.Context, items []catalogservices.StockItem, direction catalogservices.Direction) error {
	l.calls = append(l.calls, ledgerCall{items: items, direction: direction})
	if l.failErr != nil && direction == l.failOn {
		return l.failErr
	}
	return nil
}

func newTestOrder() ordermodels.Order {
	return ordermodels.Order{
		Customer: ordermodels.OrderCustomer{Name: "Nguyễn Văn A", Phone: "0901234567"},
		Delivery: ordermodels.OrderDelivery{Type: "standard", Cost: 10},
		Items: []ordermodels.OrderItem{
			{Product: primitive.NewObjectID(), Size: "M", Price: 100, Quantity: 2},
		},
	}
}

func TestOrderCreate_RetriesOnDuplicateOrderNo(t *testing.T) {
	store := newMemoryOrderStore()
	store.insertErrs = []error{common.ErrMongoDuplicate, common.ErrMongoDuplicate}
	alloc := &fakeAllocator{}
	svc := NewOrderServiceWithStores(store, alloc, &fakeLedger{})

	created, err := svc.Create(context.Background(), newTestOrder())
	if err != nil {
		t.Fatalf("Create trả về lỗi %v, muốn thành công sau retry", err)
	}
	if store.inserts != 3 {
		t.Errorf("InsertOne được gọi %d lần, muốn 3 (2 lần trùng + 1 thành công)", store.inserts)
	}
	if len(alloc.keys) != 3 {
		t.Errorf("Allocate được gọi %d lần, muốn 3 (mỗi lần thử cấp số mới)", len(alloc.keys))
	}
	for _, key := range alloc.keys {
		if !strings.HasPrefix(key, "order:") {
			t.Errorf("partition key %q, muốn prefix order:", key)
		}
	}
	if !strings.HasSuffix(created.OrderNo, "00003") {
		t.Errorf("orderNo = %q, muốn serial của lần cấp thứ 3 (hậu tố 00003)", created.OrderNo)
	}
	if created.Subtotal != 200 || created.Total != 210 {
		t.Errorf("subtotal/total = %v/%v, muốn 200/210", created.Subtotal, created.Total)
	}
	if created.Payment.Method != ordermodels.PaymentMethodCOD || created.Payment.Amount != 210 {
		t.Errorf("payment = %+v, muốn method cod mặc định và amount bằng total", created.Payment)
	}
	if created.Status.Type != ordermodels.StatusPending {
		t.Errorf("trạng thái = %q, muốn %q", created.Status.Type, ordermodels.StatusPending)
	}
}

func TestOrderCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	store := newMemoryOrderStore()
	for i := 0; i < maxCreateAttempts; i++ {
		store.insertErrs = append(store.insertErrs, common.ErrMongoDuplicate)
	}
	alloc := &fakeAllocator{}
	svc := NewOrderServiceWithStores(store, alloc, &fakeLedger{})

	_, err := svc.Create(context.Background(), newTestOrder())
	if err == nil {
		t.Fatal("Create thành công, muốn lỗi sau khi hết số lần thử")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi %v không phải *common.Error", err)
	}
	if appErr.Code.Code != common.ErrCodeBusinessSequence.Code {
		t.Errorf("mã lỗi = %q, muốn %q", appErr.Code.Code, common.ErrCodeBusinessSequence.Code)
	}
	if store.inserts != maxCreateAttempts {
		t.Errorf("InsertOne được gọi %d lần, muốn đúng %d", store.inserts, maxCreateAttempts)
	}
	if len(alloc.keys) != maxCreateAttempts {
		t.Errorf("Allocate được gọi %d lần, muốn đúng %d", len(alloc.keys), maxCreateAttempts)
	}
}

func TestOrderUpdateStatus_LedgerFailureLeavesStatusUnwritten(t *testing.T) {
	store := newMemoryOrderStore()
	order := newTestOrder()
	order.ID = primitive.NewObjectID()
	order.Status.Type = ordermodels.StatusPending
	store.orders[order.ID] = order

	ledger := &fakeLedger{failOn: catalogservices.DirectionDecrease, failErr: common.ErrInsufficientStock}
	svc := NewOrderServiceWithStores(store, &fakeAllocator{}, ledger)

	_, err := svc.UpdateStatus(context.Background(), order.ID, ordermodels.StatusProcessing)
	if err == nil {
		t.Fatal("UpdateStatus thành công, muốn lỗi khi tồn kho không đủ")
	}
	if store.updateCalls != 0 {
		t.Errorf("trạng thái bị ghi %d lần dù trừ tồn kho thất bại, muốn 0", store.updateCalls)
	}
	if store.orders[order.ID].Status.Type != ordermodels.StatusPending {
		t.Errorf("trạng thái = %q, muốn giữ nguyên %q", store.orders[order.ID].Status.Type, ordermodels.StatusPending)
	}
}

func TestOrderUpdateStatus_ConcurrentChangeRollsBackStock(t *testing.T) {
	store := newMemoryOrderStore()
	order := newTestOrder()
	order.ID = primitive.NewObjectID()
	order.Status.Type = ordermodels.StatusPending
	store.orders[order.ID] = order
	// Giả lập một request khác đổi trạng thái giữa lúc đọc và lúc ghi
	store.updateErr = common.ErrNotFound

	ledger := &fakeLedger{}
	svc := NewOrderServiceWithStores(store, &fakeAllocator{}, ledger)

	_, err := svc.UpdateStatus(context.Background(), order.ID, ordermodels.StatusProcessing)
	if err == nil {
		t.Fatal("UpdateStatus thành công, muốn lỗi xung đột khi trạng thái đã đổi")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusConflict {
		t.Errorf("lỗi %v, muốn *common.Error với status %d", err, common.StatusConflict)
	}
	if len(ledger.calls) != 2 {
		t.Fatalf("ApplyTransition được gọi %d lần, muốn 2 (trừ rồi hoàn tác)", len(ledger.calls))
	}
	if ledger.calls[0].direction != catalogservices.DirectionDecrease {
		t.Errorf("lần gọi đầu direction = %q, muốn decrease", ledger.calls[0].direction)
	}
	if ledger.calls[1].direction != catalogservices.DirectionIncrease {
		t.Errorf("lần hoàn tác direction = %q, muốn increase", ledger.calls[1].direction)
	}
}

func TestOrderUpdateStatus_DeliveredStampsDateAndSettlesCOD(t *testing.T) {
	store := newMemoryOrderStore()
	order := newTestOrder()
	order.ID = primitive.NewObjectID()
	order.Status.Type = ordermodels.StatusShipped
	order.Payment = ordermodels.OrderPayment{Method: ordermodels.PaymentMethodCOD, Amount: 210}
	store.orders[order.ID] = order

	ledger := &fakeLedger{}
	svc := NewOrderServiceWithStores(store, &fakeAllocator{}, ledger)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, ordermodels.StatusDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus trả về lỗi %v, muốn thành công", err)
	}
	if updated.Status.Type != ordermodels.StatusDelivered {
		t.Errorf("trạng thái = %q, muốn %q", updated.Status.Type, ordermodels.StatusDelivered)
	}
	if updated.Status.OrderDeliveryDate == 0 {
		t.Error("orderDeliveryDate = 0, muốn được đóng dấu ngày giao")
	}
	if !updated.Payment.Paid {
		t.Error("payment.paid = false, muốn true với đơn COD đã giao")
	}
	if len(ledger.calls) != 0 {
		t.Errorf("ApplyTransition được gọi %d lần, muốn 0 (shipped→delivered không chạm tồn kho)", len(ledger.calls))
	}
}
