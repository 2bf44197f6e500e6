package services

import (
	"testing"

	catalogservices "hok_commerce/internal/api/catalog/service"
	ordermodels "hok_commerce/internal/api/order/models"
)

func TestTransitionDirection(t *testing.T) {
	cases := []struct {
		prev, next string
		direction  catalogservices.Direction
		touches    bool
	}{
		// Bất kỳ → processing: trừ kho
		{ordermodels.StatusPending, ordermodels.StatusProcessing, catalogservices.DirectionDecrease, true},
		{ordermodels.StatusShipped, ordermodels.StatusProcessing, catalogservices.DirectionDecrease, true},
		{ordermodels.StatusCancelled, ordermodels.StatusProcessing, catalogservices.DirectionDecrease, true},

		// processing → cancelled: cộng trả kho
		{ordermodels.StatusProcessing, ordermodels.StatusCancelled, catalogservices.DirectionIncrease, true},

		// Các lần chuyển khác không chạm tồn kho
		{ordermodels.StatusPending, ordermodels.StatusShipped, "", false},
		{ordermodels.StatusPending, ordermodels.StatusCancelled, "", false},
		{ordermodels.StatusProcessing, ordermodels.StatusShipped, "", false},
		{ordermodels.StatusProcessing, ordermodels.StatusProcessing, "", false},
		{ordermodels.StatusShipped, ordermodels.StatusDelivered, "", false},
	}

	for _, tc := range cases {
		direction, touches := TransitionDirection(tc.prev, tc.next)
		if touches != tc.touches {
			t.Errorf("TransitionDirection(%s, %s) touches = %v, muốn %v", tc.prev, tc.next, touches, tc.touches)
			continue
		}
		if touches && direction != tc.direction {
			t.Errorf("TransitionDirection(%s, %s) = %s, muốn %s", tc.prev, tc.next, direction, tc.direction)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		ordermodels.StatusPending,
		ordermodels.StatusProcessing,
		ordermodels.StatusShipped,
		ordermodels.StatusDelivered,
		ordermodels.StatusCancelled,
	} {
		if !IsValidStatus(status) {
			t.Errorf("IsValidStatus(%s) = false, muốn true", status)
		}
	}

	for _, status := range []string{"", "unknown", "PENDING", "done"} {
		if IsValidStatus(status) {
			t.Errorf("IsValidStatus(%q) = true, muốn false", status)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(ordermodels.StatusDelivered) || !IsTerminalStatus(ordermodels.StatusCancelled) {
		t.Error("delivered và cancelled phải là trạng thái kết thúc")
	}
	for _, status := range []string{ordermodels.StatusPending, ordermodels.StatusProcessing, ordermodels.StatusShipped} {
		if IsTerminalStatus(status) {
			t.Errorf("IsTerminalStatus(%s) = true, muốn false", status)
		}
	}
}
