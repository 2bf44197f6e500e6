package events

import (
	"context"
	"sync"
	"testing"
	"time"
)

func resetHandlers() {
	handlersMu.Lock()
	handlers = nil
	handlersMu.Unlock()
}

func TestEmitDataChanged_DeliversToSubscribers(t *testing.T) {
	resetHandlers()
	defer resetHandlers()

	var mu sync.Mutex
	var received []DataChangeEvent
	done := make(chan struct{})

	OnDataChanged(func(_ context.Context, e DataChangeEvent) {
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		close(done)
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "shop_orders",
		Operation:      OpInsert,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler không nhận được event sau 1s")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("nhận %d event, muốn 1", len(received))
	}
	if received[0].CollectionName != "shop_orders" || received[0].Operation != OpInsert {
		t.Errorf("event = %+v, muốn collection shop_orders operation insert", received[0])
	}
}

func TestEmitDataChanged_PanicDoesNotAffectOtherHandlers(t *testing.T) {
	resetHandlers()
	defer resetHandlers()

	done := make(chan struct{})
	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		panic("handler hỏng")
	})
	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		close(done)
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "shop_products",
		Operation:      OpUpdate,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler thứ hai không chạy khi handler đầu panic")
	}
}
