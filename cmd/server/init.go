package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"hok_commerce/config"
	bookingmodels "hok_commerce/internal/api/booking/models"
	catalogmodels "hok_commerce/internal/api/catalog/models"
	"hok_commerce/internal/api/events"
	ordermodels "hok_commerce/internal/api/order/models"
	"hok_commerce/internal/database"
	"hok_commerce/internal/global"
	"hok_commerce/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initEvents()           // Đăng ký handler cho event thay đổi dữ liệu
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Products = "shop_products"
	global.MongoDB_ColNames.Orders = "shop_orders"
	global.MongoDB_ColNames.Bookings = "hotel_bookings"
	global.MongoDB_ColNames.Sliders = "cms_sliders"
	global.MongoDB_ColNames.Stories = "cms_stories"
	global.MongoDB_ColNames.Footers = "cms_footers"
	global.MongoDB_ColNames.Counters = "system_counters"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: objectid, order_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm đăng ký handler cho event thay đổi dữ liệu qua CRUD.
// Hiện tại ghi audit log theo collection/operation.
func initEvents() {
	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Debug("Data changed")
	})
	logrus.Info("Initialized data change handlers")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName

	// Khởi tạo các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, dbName, global.GetColNames()); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag index của model
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Bookings), bookingmodels.Booking{})
}
