package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

// memoryCounterStore là CounterStore in-memory cho test
type memoryCounterStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{values: make(map[string]int64)}
}

func (s *memoryCounterStore) Next(_ context.Context, partitionKey string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[partitionKey]++
	return s.values[partitionKey], nil
}

func TestAllocate_FirstValueIsOne(t *testing.T) {
	svc := NewAllocatorServiceWithStore(newMemoryCounterStore())

	value, err := svc.Allocate(context.Background(), "order:20250831")
	if err != nil {
		t.Fatalf("Allocate lỗi: %v", err)
	}
	if value != 1 {
		t.Errorf("Giá trị cấp đầu tiên = %d, muốn 1", value)
	}
}

func TestAllocate_EmptyPartitionKey(t *testing.T) {
	svc := NewAllocatorServiceWithStore(newMemoryCounterStore())

	if _, err := svc.Allocate(context.Background(), ""); err == nil {
		t.Error("Allocate với partition key rỗng phải trả về lỗi")
	}
}

func TestAllocate_ConcurrentValuesDistinct(t *testing.T) {
	svc := NewAllocatorServiceWithStore(newMemoryCounterStore())

	const n = 200
	results := make(chan int64, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := svc.Allocate(context.Background(), "booking:250831")
			if err != nil {
				t.Errorf("Allocate lỗi: %v", err)
				return
			}
			results <- value
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, n)
	for value := range results {
		if seen[value] {
			t.Fatalf("Giá trị %d bị cấp trùng", value)
		}
		seen[value] = true
	}
	if len(seen) != n {
		t.Errorf("Số giá trị phân biệt = %d, muốn %d", len(seen), n)
	}
}

func TestAllocate_PartitionsIndependent(t *testing.T) {
	svc := NewAllocatorServiceWithStore(newMemoryCounterStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Allocate(ctx, "order:20250831"); err != nil {
			t.Fatalf("Allocate lỗi: %v", err)
		}
	}

	value, err := svc.Allocate(ctx, "order:20250901")
	if err != nil {
		t.Fatalf("Allocate lỗi: %v", err)
	}
	if value != 1 {
		t.Errorf("Partition mới phải bắt đầu từ 1, nhận %d", value)
	}
}

func TestFormatOrderNo(t *testing.T) {
	day := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	if got := FormatOrderNo(day, 7); got != "2025083100007" {
		t.Errorf("FormatOrderNo = %q, muốn %q", got, "2025083100007")
	}
	if got := FormatOrderNo(day, 12345); got != "2025083112345" {
		t.Errorf("FormatOrderNo = %q, muốn %q", got, "2025083112345")
	}
}

func TestFormatBookingNo(t *testing.T) {
	day := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	if got := FormatBookingNo(day, 1); got != "25083101" {
		t.Errorf("FormatBookingNo = %q, muốn %q", got, "25083101")
	}
	if got := FormatBookingNo(day, 42); got != "25083142" {
		t.Errorf("FormatBookingNo = %q, muốn %q", got, "25083142")
	}
}

func TestPartitionKeys(t *testing.T) {
	day := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	if got := OrderPartitionKey(day); got != "order:20250831" {
		t.Errorf("OrderPartitionKey = %q, muốn %q", got, "order:20250831")
	}
	if got := BookingPartitionKey(day); got != "booking:250831" {
		t.Errorf("BookingPartitionKey = %q, muốn %q", got, "booking:250831")
	}
}
