// Package models chứa model của module sequence (cấp số thứ tự).
package models

// SequenceCounter là bộ đếm đơn điệu cho một partition key.
// Mỗi partition key (vd. "order:20250831", "booking:serial") có một
// document riêng trong collection counters; value chỉ tăng, không bao
// giờ cấp trùng. Bỏ số (gap) được chấp nhận khi thao tác sau đó thất bại.
type SequenceCounter struct {
	PartitionKey string `json:"partitionKey" bson:"_id"`
	Value        int64  `json:"value" bson:"value"`
	UpdatedAt    int64  `json:"updatedAt" bson:"updatedAt"`
}
