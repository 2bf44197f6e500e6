package database

import (
	"context"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo index cho collection dựa trên tag `index` của model.
// Tag hỗ trợ: "single" (index thường), "unique" (index duy nhất),
// "text" (index full-text). Tên field lấy từ tag bson.
//
// Ví dụ:
//
//	OrderNo string `bson:"orderNo" index:"unique"`
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	var indexModels []mongo.IndexModel
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}

		switch indexTag {
		case "unique":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys:    bson.D{{Key: bsonName, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		case "text":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: "text"}},
			})
		case "single":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: 1}},
			})
		}
	}

	if len(indexModels) == 0 {
		return
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		// Không fatal: index có thể đã tồn tại với cùng định nghĩa
		logrus.Warnf("Tạo index cho collection %s lỗi: %v", collection.Name(), err)
	}
}
