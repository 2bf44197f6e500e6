// Package services chứa service của module booking: tạo booking với
// bookingNo/serialNo do allocator cấp, tra cứu theo khách sạn và ngày
// nhận phòng, ghi nhận thanh toán theo ngày và tổng kết thu chi.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "hok_commerce/internal/api/base/service"
	bookingmodels "hok_commerce/internal/api/booking/models"
	seqservices "hok_commerce/internal/api/sequence/service"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
)

// dayLayout là định dạng ngày nhận từ client
const dayLayout = "2006-01-02"

// BookingService xử lý nghiệp vụ đặt phòng, nhúng CRUD chuẩn
type BookingService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.Booking]
	allocator *seqservices.AllocatorService
}

// NewBookingService tạo service trên collection bookings đã đăng ký
func NewBookingService() *BookingService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Bookings)
	return &BookingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.Booking](collection),
		allocator:            seqservices.NewAllocatorService(),
	}
}

// ParseDay đổi chuỗi "2006-01-02" thành mốc đầu và cuối ngày (UnixMilli)
func ParseDay(date string) (int64, int64, error) {
	t, err := time.ParseInLocation(dayLayout, date, time.Local)
	if err != nil {
		return 0, 0, common.NewError(common.ErrCodeValidationInput, "Ngày không hợp lệ, dùng định dạng YYYY-MM-DD", common.StatusBadRequest, map[string]interface{}{"date": date})
	}
	start := t.UnixMilli()
	end := t.Add(24*time.Hour).UnixMilli() - 1
	return start, end, nil
}

// Create cấp serialNo toàn cục và bookingNo cho booking mới rồi chèn.
// Nếu reference trỏ tới một bookingNo đang tồn tại thì dùng lại số đó
// (các booking cùng đoàn dùng chung bookingNo); ngược lại cấp số mới
// theo bộ đếm ngày.
func (s *BookingService) Create(ctx context.Context, booking bookingmodels.Booking) (bookingmodels.Booking, error) {
	serialNo, err := s.allocator.Allocate(ctx, seqservices.BookingSerialKey)
	if err != nil {
		return bookingmodels.Booking{}, err
	}
	booking.SerialNo = serialNo

	bookingNo, err := s.resolveBookingNo(ctx, booking.Reference)
	if err != nil {
		return bookingmodels.Booking{}, err
	}
	booking.BookingNo = bookingNo

	if booking.StatusID == 0 {
		booking.StatusID = bookingmodels.StatusActive
	}
	booking.DuePayment = booking.TotalBill - booking.AdvancePayment

	return s.InsertOne(ctx, booking)
}

// resolveBookingNo tìm bookingNo theo reference, hoặc cấp số mới theo ngày
func (s *BookingService) resolveBookingNo(ctx context.Context, reference string) (string, error) {
	if reference != "" {
		existing, err := s.FindOne(ctx, bson.M{"bookingNo": reference}, nil)
		if err == nil {
			return existing.BookingNo, nil
		}
		if !common.IsNotFound(err) {
			return "", err
		}
		// Reference không tồn tại thì bỏ qua và cấp số mới
	}

	now := time.Now()
	seq, err := s.allocator.Allocate(ctx, seqservices.BookingPartitionKey(now))
	if err != nil {
		return "", err
	}
	return seqservices.FormatBookingNo(now, seq), nil
}

// CancelById hủy booking: đánh dấu statusId = 255 và ghi người hủy.
// Booking hủy vẫn giữ lại để tra cứu lịch sử.
func (s *BookingService) CancelById(ctx context.Context, id primitive.ObjectID, canceledBy string) (bookingmodels.Booking, error) {
	update := bson.M{"$set": bson.M{
		"statusId":   bookingmodels.StatusCancelled,
		"canceledBy": canceledBy,
	}}
	return s.UpdateById(ctx, id, update)
}

// FindByHotelID trả về booking của một khách sạn, mới nhất trước
func (s *BookingService) FindByHotelID(ctx context.Context, hotelID int64) ([]bookingmodels.Booking, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return s.Find(ctx, bson.M{"hotelID": hotelID}, opts)
}

// FindByBookingNo trả về tất cả booking dùng chung một bookingNo
func (s *BookingService) FindByBookingNo(ctx context.Context, bookingNo string) ([]bookingmodels.Booking, error) {
	bookings, err := s.Find(ctx, bson.M{"bookingNo": bookingNo}, nil)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy booking với số này", common.StatusNotFound, map[string]interface{}{"bookingNo": bookingNo})
	}
	return bookings, nil
}

// FindByCheckInDate trả về tình hình phòng của một ngày: khách đang ở
// (nhận phòng trước cuối ngày, trả phòng sau đầu ngày) và các booking
// đã trả phòng trước ngày đó nhưng còn nợ
func (s *BookingService) FindByCheckInDate(ctx context.Context, date string) (bookingmodels.CheckInOverview, error) {
	start, end, err := ParseDay(date)
	if err != nil {
		return bookingmodels.CheckInOverview{}, err
	}

	regular, err := s.Find(ctx, bson.M{
		"checkInDate":  bson.M{"$lte": end},
		"checkOutDate": bson.M{"$gt": start},
	}, options.Find().SetSort(bson.M{"checkInDate": 1}))
	if err != nil {
		return bookingmodels.CheckInOverview{}, err
	}

	unpaid, err := s.Find(ctx, bson.M{
		"duePayment":   bson.M{"$gt": 0},
		"checkOutDate": bson.M{"$lt": start},
	}, options.Find().SetSort(bson.M{"checkOutDate": -1}))
	if err != nil {
		return bookingmodels.CheckInOverview{}, err
	}

	return bookingmodels.CheckInOverview{Regular: regular, Unpaid: unpaid}, nil
}

// UpsertInvoiceEntry thay thế dòng thanh toán của ngày chứa date nếu đã
// có, ngược lại thêm dòng mới. Trả về danh sách mới.
func UpsertInvoiceEntry(details []bookingmodels.InvoiceEntry, entry bookingmodels.InvoiceEntry, dayStart, dayEnd int64) []bookingmodels.InvoiceEntry {
	for i, existing := range details {
		if existing.Date >= dayStart && existing.Date <= dayEnd {
			details[i] = entry
			return details
		}
	}
	return append(details, entry)
}

// RecomputeTotals tính lại tổng đã trả và còn nợ từ các dòng thanh toán
func RecomputeTotals(totalBill float64, details []bookingmodels.InvoiceEntry) (totalPaid, duePayment float64) {
	for _, entry := range details {
		totalPaid += entry.TotalPaid
	}
	return totalPaid, totalBill - totalPaid
}

// UpdateDetails ghi nhận thanh toán của một ngày vào invoiceDetails và
// tính lại totalPaid/duePayment của booking
func (s *BookingService) UpdateDetails(ctx context.Context, id primitive.ObjectID, date string, totalPaid, dailyAmount float64) (bookingmodels.Booking, error) {
	dayStart, dayEnd, err := ParseDay(date)
	if err != nil {
		return bookingmodels.Booking{}, err
	}

	booking, err := s.FindOneById(ctx, id)
	if err != nil {
		return bookingmodels.Booking{}, err
	}

	entry := bookingmodels.InvoiceEntry{Date: dayStart, TotalPaid: totalPaid, DailyAmount: dailyAmount}
	details := UpsertInvoiceEntry(booking.InvoiceDetails, entry, dayStart, dayEnd)
	sumPaid, due := RecomputeTotals(booking.TotalBill, details)

	update := bson.M{"$set": bson.M{
		"invoiceDetails": details,
		"totalPaid":      sumPaid,
		"dailyAmount":    dailyAmount,
		"duePayment":     due,
	}}
	return s.UpdateById(ctx, id, update)
}

// DailySummary tổng kết thu của một ngày: số dư đầu ngày là tổng
// dailyAmount của các booking chạm tới trước ngày đó, thu trong ngày là
// tổng dailyAmount của các dòng thanh toán rơi vào ngày đó
func (s *BookingService) DailySummary(ctx context.Context, date string) (bookingmodels.DailySummary, error) {
	dayStart, dayEnd, err := ParseDay(date)
	if err != nil {
		return bookingmodels.DailySummary{}, err
	}

	// Số dư đầu ngày: tổng thu của các booking trước ngày này
	pipeline := []bson.M{
		{"$match": bson.M{
			"$or": []bson.M{
				{"checkInDate": bson.M{"$lt": dayStart}},
				{"checkOutDate": bson.M{"$lt": dayStart}},
			},
		}},
		{"$group": bson.M{
			"_id":     nil,
			"balance": bson.M{"$sum": "$dailyAmount"},
		}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return bookingmodels.DailySummary{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var balances []struct {
		Balance float64 `bson:"balance"`
	}
	if err := cursor.All(ctx, &balances); err != nil {
		return bookingmodels.DailySummary{}, common.ConvertMongoError(err)
	}
	var openingBalance float64
	if len(balances) > 0 {
		openingBalance = balances[0].Balance
	}

	// Thu trong ngày: cộng dòng thanh toán của ngày từ các booking chạm tới ngày đó
	todayBookings, err := s.Find(ctx, bson.M{
		"$or": []bson.M{
			{"checkInDate": bson.M{"$lte": dayEnd}},
			{"checkOutDate": bson.M{"$gte": dayStart}},
		},
	}, nil)
	if err != nil {
		return bookingmodels.DailySummary{}, err
	}

	var dailyIncome float64
	for _, booking := range todayBookings {
		for _, entry := range booking.InvoiceDetails {
			if entry.Date >= dayStart && entry.Date <= dayEnd {
				dailyIncome += entry.DailyAmount
			}
		}
	}

	totalBalance := openingBalance + dailyIncome
	return bookingmodels.DailySummary{
		Date:           date,
		OpeningBalance: openingBalance,
		DailyIncome:    dailyIncome,
		TotalBalance:   totalBalance,
		DailyExpenses:  0,
		ClosingBalance: totalBalance,
		BookingsCount:  len(todayBookings),
	}, nil
}
