package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hok_commerce/internal/common"
)

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về lỗi VAL_002 nếu chuỗi không đúng định dạng.
func String2ObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không đúng định dạng ObjectID",
			common.StatusBadRequest,
			map[string]interface{}{"id": id},
		)
	}
	return objID, nil
}

// ObjectID2String chuyển primitive.ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// Strings2ObjectIDs chuyển danh sách chuỗi hex thành danh sách ObjectID,
// dừng và trả về lỗi ở phần tử đầu tiên không hợp lệ
func Strings2ObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	result := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := String2ObjectID(id)
		if err != nil {
			return nil, err
		}
		result = append(result, objID)
	}
	return result, nil
}
