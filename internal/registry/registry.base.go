// Package registry cung cấp registry generic, an toàn với goroutine,
// dùng để lưu và tra cứu các tài nguyên dùng chung (vd. *mongo.Collection).
package registry

import (
	"fmt"
	"sync"
)

// Registry là cấu trúc generic quản lý các item theo tên
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo mới một registry rỗng
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item với tên cho trước.
// Trả về lỗi nếu tên đã tồn tại.
func (r *Registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("item '%s' đã được đăng ký", name)
	}

	r.items[name] = item
	return nil
}

// Get trả về item theo tên và cờ tồn tại
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// MustGet trả về item theo tên, panic nếu không tồn tại.
// Chỉ dùng khi khởi động (các collection đã được đăng ký trước).
func (r *Registry[T]) MustGet(name string) T {
	item, exists := r.Get(name)
	if !exists {
		panic(fmt.Sprintf("item '%s' chưa được đăng ký", name))
	}
	return item
}

// Update ghi đè item theo tên (đăng ký mới nếu chưa có)
func (r *Registry[T]) Update(name string, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = item
}

// Names trả về danh sách tên các item đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa toàn bộ item (dùng trong test)
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
