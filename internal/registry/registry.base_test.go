package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	if err := r.Register("a", "alpha"); err != nil {
		t.Fatalf("Register lần đầu không được lỗi: %v", err)
	}
	if err := r.Register("a", "alpha2"); err == nil {
		t.Error("Register trùng tên phải trả về lỗi")
	}

	v, ok := r.Get("a")
	if !ok || v != "alpha" {
		t.Errorf("Get trả về (%q, %v), muốn (%q, true)", v, ok, "alpha")
	}

	if _, ok := r.Get("b"); ok {
		t.Error("Get tên chưa đăng ký phải trả về ok=false")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item_%d", n)
			if err := r.Register(name, n); err != nil {
				t.Errorf("Register %s lỗi: %v", name, err)
			}
			if _, ok := r.Get(name); !ok {
				t.Errorf("Get %s ngay sau Register phải tồn tại", name)
			}
		}(i)
	}
	wg.Wait()

	if got := len(r.Names()); got != 50 {
		t.Errorf("Số item sau khi đăng ký đồng thời = %d, muốn 50", got)
	}
}
