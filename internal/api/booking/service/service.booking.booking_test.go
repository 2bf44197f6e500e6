package services

import (
	"testing"
	"time"

	bookingmodels "hok_commerce/internal/api/booking/models"
)

func TestParseDay(t *testing.T) {
	start, end, err := ParseDay("2025-08-31")
	if err != nil {
		t.Fatalf("ParseDay lỗi: %v", err)
	}
	if end-start != 24*time.Hour.Milliseconds()-1 {
		t.Errorf("Khoảng ngày = %d ms, muốn %d ms", end-start, 24*time.Hour.Milliseconds()-1)
	}

	for _, invalid := range []string{"", "31-08-2025", "2025/08/31", "2025-13-01"} {
		if _, _, err := ParseDay(invalid); err == nil {
			t.Errorf("ParseDay(%q) phải trả về lỗi", invalid)
		}
	}
}

func TestRecomputeTotals(t *testing.T) {
	details := []bookingmodels.InvoiceEntry{
		{TotalPaid: 1000, DailyAmount: 1000},
		{TotalPaid: 500, DailyAmount: 500},
		{TotalPaid: 0, DailyAmount: 0},
	}

	totalPaid, due := RecomputeTotals(5000, details)
	if totalPaid != 1500 {
		t.Errorf("totalPaid = %v, muốn 1500", totalPaid)
	}
	if due != 3500 {
		t.Errorf("duePayment = %v, muốn 3500", due)
	}

	totalPaid, due = RecomputeTotals(5000, nil)
	if totalPaid != 0 || due != 5000 {
		t.Errorf("Không có dòng thanh toán: totalPaid = %v, due = %v, muốn 0 và 5000", totalPaid, due)
	}
}

func TestUpsertInvoiceEntry(t *testing.T) {
	dayStart, dayEnd, err := ParseDay("2025-08-31")
	if err != nil {
		t.Fatalf("ParseDay lỗi: %v", err)
	}
	otherStart, _, _ := ParseDay("2025-08-30")

	details := []bookingmodels.InvoiceEntry{
		{Date: otherStart, TotalPaid: 200, DailyAmount: 200},
	}

	// Thêm dòng mới cho ngày chưa có
	entry := bookingmodels.InvoiceEntry{Date: dayStart, TotalPaid: 500, DailyAmount: 500}
	details = UpsertInvoiceEntry(details, entry, dayStart, dayEnd)
	if len(details) != 2 {
		t.Fatalf("Số dòng = %d, muốn 2", len(details))
	}

	// Ghi lại cùng ngày phải thay thế, không thêm dòng
	entry.TotalPaid = 700
	details = UpsertInvoiceEntry(details, entry, dayStart, dayEnd)
	if len(details) != 2 {
		t.Fatalf("Số dòng sau khi ghi đè = %d, muốn 2", len(details))
	}
	if details[1].TotalPaid != 700 {
		t.Errorf("Dòng của ngày phải được thay thế: totalPaid = %v, muốn 700", details[1].TotalPaid)
	}
	if details[0].TotalPaid != 200 {
		t.Errorf("Dòng của ngày khác không được thay đổi: totalPaid = %v, muốn 200", details[0].TotalPaid)
	}
}
