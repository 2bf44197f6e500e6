package services

import (
	catalogservices "hok_commerce/internal/api/catalog/service"
	ordermodels "hok_commerce/internal/api/order/models"
)

// validStatuses là tập trạng thái đơn hàng hợp lệ
var validStatuses = map[string]bool{
	ordermodels.StatusPending:    true,
	ordermodels.StatusProcessing: true,
	ordermodels.StatusShipped:    true,
	ordermodels.StatusDelivered:  true,
	ordermodels.StatusCancelled:  true,
}

// IsValidStatus kiểm tra chuỗi có phải trạng thái đơn hàng hợp lệ không
func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// IsTerminalStatus kiểm tra trạng thái kết thúc (không chuyển tiếp được nữa)
func IsTerminalStatus(status string) bool {
	return status == ordermodels.StatusDelivered || status == ordermodels.StatusCancelled
}

// TransitionDirection trả về chiều điều chỉnh tồn kho cho một lần chuyển
// trạng thái, và false nếu lần chuyển đó không chạm tồn kho.
// Chỉ hai ranh giới có hiệu ứng: bất kỳ → processing trừ kho,
// processing → cancelled cộng trả kho.
func TransitionDirection(prev, next string) (catalogservices.Direction, bool) {
	if next == ordermodels.StatusProcessing && prev != ordermodels.StatusProcessing {
		return catalogservices.DirectionDecrease, true
	}
	if prev == ordermodels.StatusProcessing && next == ordermodels.StatusCancelled {
		return catalogservices.DirectionIncrease, true
	}
	return "", false
}
