// Package handler chứa handler CRUD generic cho Fiber.
// Các handler domain nhúng BaseHandler và bổ sung endpoint nghiệp vụ riêng.
package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	services "hok_commerce/internal/api/base/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
)

// FilterOptions giới hạn filter mà client được phép gửi lên
type FilterOptions struct {
	DeniedFields     []string // Các field không được phép filter
	AllowedOperators []string // Các toán tử MongoDB được phép
	MaxFields        int      // Số field tối đa trong một filter
}

// BaseHandler xử lý các request CRUD chuẩn cho một collection.
// T là model, CreateInput/UpdateInput là DTO đầu vào.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service    services.BaseServiceMongo[T]
	FilterOpts FilterOptions
}

// NewBaseHandler tạo handler CRUD với các giới hạn filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service services.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		Service: service,
		FilterOpts: FilterOptions{
			DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
			AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$ne", "$exists", "$regex", "$options", "$or", "$and"},
			MaxFields:        10,
		},
	}
}

// validateInput kiểm tra input theo các tag validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseRequestBody parse body JSON vào input và validate.
// Dùng json.Decoder với UseNumber để không mất độ chính xác số lớn.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Body không được để trống", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	return h.validateInput(input)
}

// processFilter đọc query param "filter" (JSON), chuẩn hóa và kiểm tra
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFilter(c fiber.Ctx) (map[string]interface{}, error) {
	filter := map[string]interface{}{}

	raw := c.Query("filter")
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &filter); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
		}
	}

	filter = h.normalizeFilter(filter)
	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// normalizeFilter chuyển các giá trị ID dạng chuỗi hex về ObjectID
// để filter từ client hoạt động đúng với các field lưu ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(filter))
	for key, value := range filter {
		isIDField := key == "_id" || strings.HasSuffix(key, "Id") || strings.HasSuffix(key, ".product")
		normalized[key] = h.normalizeFilterValue(value, isIDField)
	}
	return normalized
}

// normalizeFilterValue xử lý đệ quy giá trị filter: chuỗi hex → ObjectID,
// hỗ trợ dạng extended JSON {"$oid": "..."}
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	switch v := value.(type) {
	case string:
		if isIDField {
			if objID, err := primitive.ObjectIDFromHex(v); err == nil {
				return objID
			}
		}
		return v
	case map[string]interface{}:
		// Dạng {"$oid": "hex"}
		if oid, ok := v["$oid"].(string); ok && len(v) == 1 {
			if objID, err := primitive.ObjectIDFromHex(oid); err == nil {
				return objID
			}
		}
		nested := make(map[string]interface{}, len(v))
		for k, nestedValue := range v {
			nested[k] = h.normalizeFilterValue(nestedValue, isIDField)
		}
		return nested
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = h.normalizeFilterValue(item, isIDField)
		}
		return items
	default:
		return v
	}
}

// validateFilter kiểm tra filter theo FilterOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.FilterOpts.MaxFields {
		return common.NewError(common.ErrCodeValidationInput, "Filter có quá nhiều field", common.StatusBadRequest, nil)
	}

	allowed := make(map[string]bool, len(h.FilterOpts.AllowedOperators))
	for _, op := range h.FilterOpts.AllowedOperators {
		allowed[op] = true
	}

	var check func(value interface{}) error
	check = func(value interface{}) error {
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		for key, nested := range m {
			if strings.HasPrefix(key, "$") && !allowed[key] {
				return common.NewError(common.ErrCodeValidationInput, "Toán tử không được phép: "+key, common.StatusBadRequest, nil)
			}
			if err := check(nested); err != nil {
				return err
			}
		}
		return nil
	}

	for key, value := range filter {
		for _, denied := range h.FilterOpts.DeniedFields {
			if strings.Contains(strings.ToLower(key), denied) {
				return common.NewError(common.ErrCodeValidationInput, "Field không được phép filter: "+key, common.StatusBadRequest, nil)
			}
		}
		if err := check(value); err != nil {
			return err
		}
	}
	return nil
}

// mongoQueryOptions là phần options client được gửi qua query param "options"
type mongoQueryOptions struct {
	Sort       map[string]interface{} `json:"sort"`
	Projection map[string]interface{} `json:"projection"`
	Limit      *int64                 `json:"limit"`
	Skip       *int64                 `json:"skip"`
}

// processFindOptions đọc query param "options" thành *options.FindOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOptions(c fiber.Ctx) (*options.FindOptions, error) {
	raw := c.Query("options")
	opts := options.Find()
	if raw == "" {
		return opts, nil
	}

	var parsed mongoQueryOptions
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Options không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}

	if parsed.Sort != nil {
		opts.SetSort(parsed.Sort)
	}
	if parsed.Projection != nil {
		opts.SetProjection(parsed.Projection)
	}
	if parsed.Limit != nil {
		opts.SetLimit(*parsed.Limit)
	}
	if parsed.Skip != nil {
		opts.SetSkip(*parsed.Skip)
	}
	return opts, nil
}

// processFindOneOptions đọc query param "options" thành *options.FindOneOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOneOptions(c fiber.Ctx) (*options.FindOneOptions, error) {
	raw := c.Query("options")
	opts := options.FindOne()
	if raw == "" {
		return opts, nil
	}

	var parsed mongoQueryOptions
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Options không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}

	if parsed.Sort != nil {
		opts.SetSort(parsed.Sort)
	}
	if parsed.Projection != nil {
		opts.SetProjection(parsed.Projection)
	}
	if parsed.Skip != nil {
		opts.SetSkip(*parsed.Skip)
	}
	return opts, nil
}

// ParsePagination đọc page/limit từ query với mặc định 1/10
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// GetIDFromContext lấy id từ path params
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// transformCreateInputToModel chuyển CreateInput thành model qua JSON roundtrip
// (các field trùng json tag sẽ được map tự động)
func (h *BaseHandler[T, CreateInput, UpdateInput]) transformCreateInputToModel(input *CreateInput) (*T, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	var model T
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	return &model, nil
}

// transformUpdateInputToMap chuyển UpdateInput thành map $set (bỏ field rỗng)
func (h *BaseHandler[T, CreateInput, UpdateInput]) transformUpdateInputToMap(input *UpdateInput) (map[string]interface{}, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
	return m, nil
}
