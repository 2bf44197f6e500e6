// Package database quản lý kết nối MongoDB và khởi tạo collection/index.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hok_commerce/config"
)

// GetInstance tạo kết nối MongoDB từ cấu hình và kiểm tra bằng Ping
func GetInstance(cfg *config.Configuration) (*mongo.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config không được nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(10 * time.Second).
		SetSocketTimeout(30 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("không thể ping MongoDB: %w", err)
	}

	return client, nil
}

// CloseInstance đóng kết nối MongoDB
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureDatabaseAndCollections tạo các collection chưa tồn tại.
// MongoDB tạo collection khi ghi lần đầu, nhưng tạo trước để index
// unique (orderNo, name, ...) có hiệu lực ngay từ đầu.
func EnsureDatabaseAndCollections(client *mongo.Client, dbName string, colNames []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := client.Database(dbName)
	existing, err := db.ListCollectionNames(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("không thể liệt kê collection: %w", err)
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range colNames {
		if name == "" || existingSet[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("không thể tạo collection %s: %w", name, err)
		}
	}

	return nil
}
