// Package models chứa model của module booking (đặt phòng khách sạn).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Trạng thái booking theo statusID. StatusCancelled trùng quy ước
// soft delete của toàn hệ thống: booking hủy bị ẩn nhưng không xóa.
const (
	StatusActive    = 1
	StatusCancelled = 255
)

// InvoiceEntry là một dòng thanh toán theo ngày của booking
type InvoiceEntry struct {
	Date        int64   `json:"date" bson:"date"`
	TotalPaid   float64 `json:"totalPaid" bson:"totalPaid"`
	DailyAmount float64 `json:"dailyAmount" bson:"dailyAmount"`
}

// Booking là một lần đặt phòng. BookingNo không unique: các booking
// tham chiếu nhau (cùng đoàn khách) dùng chung bookingNo, phân biệt
// bằng serialNo toàn cục do allocator cấp.
type Booking struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	FullName    string `json:"fullName" bson:"fullName"`
	NidPassport string `json:"nidPassport,omitempty" bson:"nidPassport,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	Phone       string `json:"phone" bson:"phone"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`

	HotelName        string  `json:"hotelName" bson:"hotelName"`
	HotelID          int64   `json:"hotelID" bson:"hotelID" index:"single"`
	RoomCategoryID   string  `json:"roomCategoryID" bson:"roomCategoryID"`
	RoomCategoryName string  `json:"roomCategoryName" bson:"roomCategoryName"`
	RoomNumberID     string  `json:"roomNumberID" bson:"roomNumberID"`
	RoomNumberName   string  `json:"roomNumberName" bson:"roomNumberName"`
	RoomPrice        float64 `json:"roomPrice" bson:"roomPrice"`

	CheckInDate  int64 `json:"checkInDate" bson:"checkInDate" index:"single"`
	CheckOutDate int64 `json:"checkOutDate" bson:"checkOutDate"`
	Nights       int64 `json:"nights" bson:"nights"`
	Adults       int64 `json:"adults,omitempty" bson:"adults,omitempty"`
	Children     int64 `json:"children,omitempty" bson:"children,omitempty"`

	TotalBill      float64 `json:"totalBill" bson:"totalBill"`
	AdvancePayment float64 `json:"advancePayment" bson:"advancePayment"`
	DuePayment     float64 `json:"duePayment" bson:"duePayment"`
	TotalPaid      float64 `json:"totalPaid" bson:"totalPaid"`
	DailyAmount    float64 `json:"dailyAmount" bson:"dailyAmount"`

	PaymentMethod string `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TransactionID string `json:"transactionId" bson:"transactionId"`
	Note          string `json:"note,omitempty" bson:"note,omitempty"`

	IsKitchen         bool    `json:"isKitchen,omitempty" bson:"isKitchen,omitempty"`
	KitchenTotalBill  float64 `json:"kitchenTotalBill,omitempty" bson:"kitchenTotalBill,omitempty"`
	ExtraBed          bool    `json:"extraBed,omitempty" bson:"extraBed,omitempty"`
	ExtraBedTotalBill float64 `json:"extraBedTotalBill,omitempty" bson:"extraBedTotalBill,omitempty"`

	BookedBy    string `json:"bookedBy" bson:"bookedBy"`
	BookedByID  string `json:"bookedByID" bson:"bookedByID"`
	UpdatedByID string `json:"updatedByID,omitempty" bson:"updatedByID,omitempty"`

	BookingNo string `json:"bookingNo" bson:"bookingNo" index:"single"`
	SerialNo  int64  `json:"serialNo" bson:"serialNo"`
	Reference string `json:"reference,omitempty" bson:"reference,omitempty"`

	StatusID   int    `json:"statusId" bson:"statusId"`
	CanceledBy string `json:"canceledBy,omitempty" bson:"canceledBy,omitempty"`

	InvoiceDetails []InvoiceEntry `json:"invoiceDetails,omitempty" bson:"invoiceDetails,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// CheckInOverview là danh sách booking của một ngày: khách đang ở
// trong ngày đó và các booking đã trả phòng nhưng còn nợ
type CheckInOverview struct {
	Regular []Booking `json:"regularInvoice"`
	Unpaid  []Booking `json:"unPaidInvoice"`
}

// DailySummary là tổng kết thu chi của một ngày
type DailySummary struct {
	Date           string  `json:"date"`
	OpeningBalance float64 `json:"openingBalance"`
	DailyIncome    float64 `json:"dailyIncome"`
	TotalBalance   float64 `json:"totalBalance"`
	DailyExpenses  float64 `json:"dailyExpenses"`
	ClosingBalance float64 `json:"closingBalance"`
	BookingsCount  int     `json:"bookingsCount"`
}
