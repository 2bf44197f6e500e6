package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"hok_commerce/internal/database"
	"hok_commerce/internal/global"
	"hok_commerce/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator, database)
	InitGlobal()

	// Khởi tạo registry các collection
	InitRegistry()

	// Đóng kết nối database khi server dừng
	defer func() {
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			logger.GetAppLogger().WithField("error", err.Error()).Error("Lỗi khi đóng kết nối MongoDB")
		}
	}()

	// Chạy Fiber server trên main thread
	main_thread()
}
