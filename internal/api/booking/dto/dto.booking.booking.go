// Package dto chứa các cấu trúc đầu vào của module booking.
package dto

// BookingCreateInput là dữ liệu tạo booking. BookingNo và serialNo không
// nhận từ client: serialNo luôn do allocator cấp; bookingNo được tái sử
// dụng từ reference nếu có, ngược lại cấp mới theo ngày.
type BookingCreateInput struct {
	FullName    string `json:"fullName" validate:"required"`
	NidPassport string `json:"nidPassport,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`

	HotelName        string  `json:"hotelName" validate:"required"`
	HotelID          int64   `json:"hotelID" validate:"required"`
	RoomCategoryID   string  `json:"roomCategoryID" validate:"required"`
	RoomCategoryName string  `json:"roomCategoryName" validate:"required"`
	RoomNumberID     string  `json:"roomNumberID" validate:"required"`
	RoomNumberName   string  `json:"roomNumberName" validate:"required"`
	RoomPrice        float64 `json:"roomPrice" validate:"required,gt=0"`

	CheckInDate  string `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Nights       int64  `json:"nights" validate:"required,gt=0"`
	Adults       int64  `json:"adults,omitempty" validate:"omitempty,gte=0"`
	Children     int64  `json:"children,omitempty" validate:"omitempty,gte=0"`

	TotalBill      float64 `json:"totalBill" validate:"required,gt=0"`
	AdvancePayment float64 `json:"advancePayment" validate:"gte=0"`

	PaymentMethod string `json:"paymentMethod,omitempty"`
	TransactionID string `json:"transactionId" validate:"required"`
	Note          string `json:"note,omitempty"`

	IsKitchen         bool    `json:"isKitchen,omitempty"`
	KitchenTotalBill  float64 `json:"kitchenTotalBill,omitempty" validate:"omitempty,gte=0"`
	ExtraBed          bool    `json:"extraBed,omitempty"`
	ExtraBedTotalBill float64 `json:"extraBedTotalBill,omitempty" validate:"omitempty,gte=0"`

	BookedBy   string `json:"bookedBy" validate:"required"`
	BookedByID string `json:"bookedByID" validate:"required"`

	Reference string `json:"reference,omitempty"`
}

// BookingUpdateInput là dữ liệu cập nhật thông tin booking
// (không gồm bookingNo/serialNo/statusId)
type BookingUpdateInput struct {
	FullName    *string `json:"fullName,omitempty"`
	NidPassport *string `json:"nidPassport,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Note        *string `json:"note,omitempty"`
	UpdatedByID *string `json:"updatedByID,omitempty"`

	CheckInDate  *string  `json:"checkInDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate *string  `json:"checkOutDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Nights       *int64   `json:"nights,omitempty" validate:"omitempty,gt=0"`
	Adults       *int64   `json:"adults,omitempty" validate:"omitempty,gte=0"`
	Children     *int64   `json:"children,omitempty" validate:"omitempty,gte=0"`
	TotalBill    *float64 `json:"totalBill,omitempty" validate:"omitempty,gt=0"`
}

// BookingCancelInput là yêu cầu hủy booking (soft cancel)
type BookingCancelInput struct {
	CanceledBy string `json:"canceledBy" validate:"required"`
}

// BookingByHotelInput là yêu cầu tra cứu booking theo khách sạn
type BookingByHotelInput struct {
	HotelID int64 `json:"hotelID" validate:"required"`
}

// BookingDetailsInput là yêu cầu ghi nhận thanh toán theo ngày
type BookingDetailsInput struct {
	SearchDate  string  `json:"searchDate" validate:"required,datetime=2006-01-02"`
	TotalPaid   float64 `json:"totalPaid" validate:"gte=0"`
	DailyAmount float64 `json:"dailyAmount" validate:"gte=0"`
}
