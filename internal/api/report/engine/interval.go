// Package engine là lõi tổng hợp báo cáo hoạt động: các hàm thuần tính
// cửa sổ thời gian, lọc bản ghi theo cửa sổ, gộp chỉ số theo thành viên,
// tìm thành viên dẫn đầu và chia bucket cho biểu đồ.
//
// Toàn bộ package không gọi I/O và không đọc đồng hồ toàn cục. Thời điểm
// "hiện tại" luôn được truyền vào tường minh để kết quả tái lập được trong
// test. Mọi phép tính ngày đều theo lịch địa phương của time.Time đầu vào,
// áp dụng thống nhất cho cả báo cáo tuần lẫn danh sách sự kiện sắp tới.
package engine

import "time"

// Clock cấp thời điểm hiện tại cho các tầng gọi engine.
// Inject thay vì gọi time.Now trực tiếp để test dựng được kịch bản cố định.
type Clock func() time.Time

// Granularity là độ mịn chia bucket của biểu đồ.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// Ngưỡng chọn độ mịn theo độ dài khoảng thời gian (số ngày).
// Đây là chính sách hiển thị cố định của sản phẩm, không được thay đổi.
const (
	maxDaysForDaily  = 14
	maxDaysForWeekly = 60
)

// EventDateLayout là định dạng ngày của sự kiện ("2024-06-11").
const EventDateLayout = "2006-01-02"

// StartOfDay trả về 00:00:00 cùng ngày theo location của t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// MostRecentTuesday trả về 00:00:00 của thứ Ba gần nhất không muộn hơn now.
// Nếu now rơi đúng thứ Ba thì trả về đầu ngày hôm đó, không lùi về tuần trước.
func MostRecentTuesday(now time.Time) time.Time {
	t := StartOfDay(now)
	for t.Weekday() != time.Tuesday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AddDays cộng n ngày theo lịch (n âm để lùi).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks cộng n tuần theo lịch (n âm để lùi).
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*7)
}

// IsWithin kiểm tra start <= t <= end, bao gồm cả hai đầu mút.
func IsWithin(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// DaysBetween trả về số ngày lịch nguyên từ a đến b (b trước a cho kết quả âm).
// Đếm theo thành phần ngày tháng chứ không chia duration, vì khoảng cách giữa
// hai nửa đêm địa phương không phải lúc nào cũng là bội của 24h (đổi giờ DST).
func DaysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// GranularityFor chọn độ mịn bucket theo độ dài khoảng [start, end]:
// tối đa 14 ngày theo ngày, tối đa 60 ngày theo tuần, còn lại theo tháng.
func GranularityFor(start, end time.Time) Granularity {
	days := DaysBetween(start, end)
	if days < 0 {
		days = -days
	}
	switch {
	case days <= maxDaysForDaily:
		return GranularityDaily
	case days <= maxDaysForWeekly:
		return GranularityWeekly
	default:
		return GranularityMonthly
	}
}

// ParseEventDate parse chuỗi ngày sự kiện theo EventDateLayout.
// Ngày không parse được bị loại khỏi mọi phép tổng hợp thay vì gây lỗi.
func ParseEventDate(s string) (time.Time, error) {
	return time.ParseInLocation(EventDateLayout, s, time.Local)
}

// IsWithinNextTwoWeeks kiểm tra ngày sự kiện có nằm trong 14 ngày tới không,
// chỉ so sánh thành phần ngày. Sự kiện "hôm nay" luôn được tính dù giờ của nó
// đã qua. Chuỗi ngày hỏng trả về false.
func IsWithinNextTwoWeeks(dateStr string, now time.Time) bool {
	date, err := ParseEventDate(dateStr)
	if err != nil {
		return false
	}
	today := StartOfDay(now)
	horizon := AddDays(today, 14)
	return IsWithin(StartOfDay(date), today, horizon)
}

// TimeFromMillis đổi Unix ms thành time.Time theo lịch địa phương.
// Giá trị <= 0 coi như timestamp hỏng, trả về zero time.
func TimeFromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
