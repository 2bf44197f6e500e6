package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basemodels "hok_commerce/internal/api/base/models"
	"hok_commerce/internal/common"
	"hok_commerce/internal/utility"
)

// InsertOne xử lý POST /insert-one: parse CreateInput, transform, insert
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		model, err := h.transformCreateInputToModel(&input)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertMany xử lý POST /insert-many: body là mảng CreateInput
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := json.Unmarshal(c.Body(), &inputs); err != nil {
			h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
			return nil
		}
		if len(inputs) == 0 {
			h.HandleError(c, common.ErrInvalidInput)
			return nil
		}

		models := make([]T, 0, len(inputs))
		for i := range inputs {
			if err := h.validateInput(&inputs[i]); err != nil {
				h.HandleError(c, err)
				return nil
			}
			model, err := h.transformCreateInputToModel(&inputs[i])
			if err != nil {
				h.HandleError(c, err)
				return nil
			}
			models = append(models, *model)
		}

		data, err := h.Service.InsertMany(c.Context(), models)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find xử lý GET /find với query filter + options
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.Find(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne xử lý GET /find-one với query filter + options
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		opts, err := h.processFindOneOptions(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.FindOne(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById xử lý GET /find-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// findByIdsInput là body của POST /find-by-ids
type findByIdsInput struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// FindManyByIds xử lý POST /find-by-ids
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input findByIdsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		ids, err := utility.Strings2ObjectIDs(input.IDs)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.FindManyByIds(c.Context(), ids)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination xử lý GET /find-with-pagination
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.Service.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// updateRequest là body của các endpoint update theo filter
type updateRequest struct {
	Filter map[string]interface{} `json:"filter" validate:"required"`
	Update map[string]interface{} `json:"update" validate:"required"`
}

// UpdateOne xử lý PUT /update-one: body {filter, update}
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req updateRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		if err := h.validateFilter(filter); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.UpdateOne(c.Context(), filter, req.Update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateMany xử lý PUT /update-many: body {filter, update}
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req updateRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		if err := h.validateFilter(filter); err != nil {
			h.HandleError(c, err)
			return nil
		}

		count, err := h.Service.UpdateMany(c.Context(), filter, req.Update)
		h.HandleResponse(c, fiber.Map{"modifiedCount": count}, err)
		return nil
	})
}

// UpdateById xử lý PUT /update-by-id/:id với body là UpdateInput
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		update, err := h.transformUpdateInputToMap(&input)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		if len(update) == 0 {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.Service.UpdateById(c.Context(), id, update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneAndUpdate xử lý PUT /find-one-and-update: body {filter, update}
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req updateRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		if err := h.validateFilter(filter); err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.FindOneAndUpdate(c.Context(), filter, req.Update, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// filterRequest là body của các endpoint thao tác theo filter
type filterRequest struct {
	Filter map[string]interface{} `json:"filter" validate:"required"`
}

// DeleteOne xử lý DELETE /delete-one: body {filter}
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req filterRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		err := h.Service.DeleteOne(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// DeleteMany xử lý DELETE /delete-many: body {filter}
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req filterRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		count, err := h.Service.DeleteMany(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"deletedCount": count}, err)
		return nil
	})
}

// DeleteById xử lý DELETE /delete-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.String2ObjectID(h.GetIDFromContext(c))
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		err = h.Service.DeleteById(c.Context(), id)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// FindOneAndDelete xử lý DELETE /find-one-and-delete: body {filter}
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req filterRequest
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		data, err := h.Service.FindOneAndDelete(c.Context(), filter)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// CountDocuments xử lý GET /count với query filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		count, err := h.Service.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, basemodels.CountResult{TotalCount: count}, err)
		return nil
	})
}

// Distinct xử lý GET /distinct?field=<tên field> với query filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		field := c.Query("field")
		if field == "" {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Thiếu query param 'field'", common.StatusBadRequest, nil))
			return nil
		}

		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		values, err := h.Service.Distinct(c.Context(), field, filter)
		h.HandleResponse(c, values, err)
		return nil
	})
}

// upsertRequest là body của POST /upsert-one
type upsertRequest[CreateInput any] struct {
	Filter map[string]interface{} `json:"filter" validate:"required"`
	Data   CreateInput            `json:"data" validate:"required"`
}

// Upsert xử lý POST /upsert-one: body {filter, data}
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var req upsertRequest[CreateInput]
		if err := h.ParseRequestBody(c, &req); err != nil {
			h.HandleError(c, err)
			return nil
		}

		filter := h.normalizeFilter(req.Filter)
		if err := h.validateFilter(filter); err != nil {
			h.HandleError(c, err)
			return nil
		}

		model, err := h.transformCreateInputToModel(&req.Data)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		data, err := h.Service.Upsert(c.Context(), filter, *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpsertMany xử lý POST /upsert-many: body là mảng {filter, data}
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var reqs []upsertRequest[CreateInput]
		if err := json.Unmarshal(c.Body(), &reqs); err != nil {
			h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
			return nil
		}
		if len(reqs) == 0 {
			h.HandleError(c, common.ErrInvalidInput)
			return nil
		}

		filters := make([]interface{}, 0, len(reqs))
		models := make([]T, 0, len(reqs))
		for i := range reqs {
			filter := h.normalizeFilter(reqs[i].Filter)
			if err := h.validateFilter(filter); err != nil {
				h.HandleError(c, err)
				return nil
			}
			model, err := h.transformCreateInputToModel(&reqs[i].Data)
			if err != nil {
				h.HandleError(c, err)
				return nil
			}
			filters = append(filters, bson.M(filter))
			models = append(models, *model)
		}

		data, err := h.Service.UpsertMany(c.Context(), filters, models)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DocumentExists xử lý GET /exists với query filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		exists, err := h.Service.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, basemodels.ExistsResult{Exists: exists}, err)
		return nil
	})
}
