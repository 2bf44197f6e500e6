package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validate là validator instance dùng chung cho toàn ứng dụng
var Validate *validator.Validate

// InitValidator khởi tạo validator và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// objectid: chuỗi phải là ObjectID hex hợp lệ
	_ = Validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})

	// order_status: trạng thái đơn hàng hợp lệ
	_ = Validate.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "pending", "processing", "shipped", "delivered", "cancelled":
			return true
		}
		return false
	})
}
