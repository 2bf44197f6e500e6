// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// session MongoDB, validator và registry các collection.
package global

import (
	"hok_commerce/config"
	"hok_commerce/internal/registry"

	"go.mongodb.org/mongo-driver/mongo"
)

// ColNames chứa tên các collection trong database
type ColNames struct {
	Products string // Sản phẩm (kèm tồn kho theo size)
	Orders   string // Đơn hàng shop
	Bookings string // Booking khách sạn
	Sliders  string // Slider trang chủ
	Stories  string // Story trang chủ
	Footers  string // Nội dung footer
	Counters string // Bộ đếm cấp số thứ tự
}

var (
	// MongoDB_ServerConfig là cấu hình server đọc từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ColNames chứa tên các collection
	MongoDB_ColNames ColNames

	// RegistryCollections là registry các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// GetColNames trả về danh sách tên tất cả collection của hệ thống
func GetColNames() []string {
	return []string{
		MongoDB_ColNames.Products,
		MongoDB_ColNames.Orders,
		MongoDB_ColNames.Bookings,
		MongoDB_ColNames.Sliders,
		MongoDB_ColNames.Stories,
		MongoDB_ColNames.Footers,
		MongoDB_ColNames.Counters,
	}
}
