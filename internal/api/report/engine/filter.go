package engine

import (
	"fmt"
	"time"

	activitymodels "biz_connect/internal/api/activity/models"
	"biz_connect/internal/common"
)

// Window là khoảng thời gian đóng [Start, End] dùng để chọn bản ghi.
// Không bao giờ được lưu trữ, luôn tính lại theo "now" của từng request.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow tạo Window và từ chối ngay khi End trước Start,
// để phân biệt "không có hoạt động" với lỗi của caller.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate kiểm tra cửa sổ hợp lệ.
func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return common.NewError(
			common.ErrCodeReportWindow,
			fmt.Sprintf("Cửa sổ thời gian không hợp lệ: kết thúc (%s) trước bắt đầu (%s)",
				w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339)),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// Contains kiểm tra timestamp Unix ms có nằm trong cửa sổ không.
// Timestamp <= 0 coi như hỏng và luôn nằm ngoài.
func (w Window) Contains(ms int64) bool {
	t := TimeFromMillis(ms)
	if t.IsZero() {
		return false
	}
	return IsWithin(t, w.Start, w.End)
}

// WeeklyWindow trả về cửa sổ báo cáo tuần: từ 00:00 thứ Ba gần nhất đến now.
func WeeklyWindow(now time.Time) Window {
	return Window{Start: MostRecentTuesday(now), End: now}
}

// filterByWindow lọc records theo cửa sổ và predicate trạng thái.
// Lọc ổn định: giữ nguyên thứ tự nguồn, không sửa slice đầu vào, luôn trả
// về slice mới. Bản ghi có timestamp hỏng bị loại lặng lẽ vì dữ liệu do
// người dùng nhập từ store ngoài có thể thiếu sót, không được làm hỏng cả
// báo cáo.
func filterByWindow[T any](records []T, w Window, occurredAt func(T) int64, keep func(T) bool) []T {
	result := make([]T, 0, len(records))
	for _, record := range records {
		if !w.Contains(occurredAt(record)) {
			continue
		}
		if keep != nil && !keep(record) {
			continue
		}
		result = append(result, record)
	}
	return result
}

// FilterReferrals trả về các referral xảy ra trong cửa sổ.
func FilterReferrals(records []activitymodels.ActivityReferral, w Window) []activitymodels.ActivityReferral {
	return filterByWindow(records, w, func(r activitymodels.ActivityReferral) int64 { return r.OccurredAt }, nil)
}

// FilterVisitors trả về các khách mời trong cửa sổ. Mặc định loại khách
// vắng mặt; đặt includeNoShows = true để giữ lại (dùng cho tổng số khách).
func FilterVisitors(records []activitymodels.ActivityVisitor, w Window, includeNoShows bool) []activitymodels.ActivityVisitor {
	keep := func(v activitymodels.ActivityVisitor) bool { return !v.DidNotShow }
	if includeNoShows {
		keep = nil
	}
	return filterByWindow(records, w, func(v activitymodels.ActivityVisitor) int64 { return v.OccurredAt }, keep)
}

// FilterOneToOnes trả về các buổi gặp 1-1 trong cửa sổ.
func FilterOneToOnes(records []activitymodels.ActivityOneToOne, w Window) []activitymodels.ActivityOneToOne {
	return filterByWindow(records, w, func(o activitymodels.ActivityOneToOne) int64 { return o.OccurredAt }, nil)
}

// FilterClosedBusiness trả về các giao dịch chốt trong cửa sổ.
func FilterClosedBusiness(records []activitymodels.ActivityClosedBusiness, w Window) []activitymodels.ActivityClosedBusiness {
	return filterByWindow(records, w, func(c activitymodels.ActivityClosedBusiness) int64 { return c.OccurredAt }, nil)
}
