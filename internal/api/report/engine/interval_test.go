package engine

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 6, 12, 15, 42, 9, 123456, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay không đúng: muốn %v, nhận %v", want, got)
	}
}

func TestMostRecentTuesdayFromWednesday(t *testing.T) {
	// 2024-06-12 là thứ Tư, thứ Ba gần nhất là 2024-06-11
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	got := MostRecentTuesday(now)
	want := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Từ thứ Tư phải lùi về thứ Ba hôm trước: muốn %v, nhận %v", want, got)
	}
}

func TestMostRecentTuesdayOnTuesday(t *testing.T) {
	// Đang là thứ Ba lúc 15:00 thì phải trả về đầu ngày hôm đó, không lùi tuần
	now := time.Date(2024, 6, 11, 15, 0, 0, 0, time.UTC)
	got := MostRecentTuesday(now)
	want := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Thứ Ba phải trả về chính ngày đó lúc 00:00: muốn %v, nhận %v", want, got)
	}
}

func TestMostRecentTuesdayFromMonday(t *testing.T) {
	// 2024-06-10 là thứ Hai, thứ Ba gần nhất là tuần trước: 2024-06-04
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	got := MostRecentTuesday(now)
	want := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Từ thứ Hai phải lùi về thứ Ba tuần trước: muốn %v, nhận %v", want, got)
	}
}

func TestIsWithinInclusiveBothEnds(t *testing.T) {
	start := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	if !IsWithin(start, start, end) {
		t.Error("Đầu mút start phải được tính là nằm trong khoảng")
	}
	if !IsWithin(end, start, end) {
		t.Error("Đầu mút end phải được tính là nằm trong khoảng")
	}
	if IsWithin(start.Add(-time.Millisecond), start, end) {
		t.Error("Thời điểm trước start không được nằm trong khoảng")
	}
	if IsWithin(end.Add(time.Millisecond), start, end) {
		t.Error("Thời điểm sau end không được nằm trong khoảng")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 10 {
		t.Errorf("DaysBetween phải đếm theo ngày lịch, bỏ qua giờ: muốn 10, nhận %d", got)
	}
	if got := DaysBetween(b, a); got != -10 {
		t.Errorf("Đảo chiều phải cho kết quả âm: muốn -10, nhận %d", got)
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	// 2024-03-10 là ngày đổi giờ mùa hè ở Mỹ: khoảng cách giữa hai nửa đêm
	// địa phương trong tuần đó thiếu 1 giờ, chia duration cho 24h sẽ đếm hụt.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("Không tải được timezone America/New_York: %v", err)
	}
	a := time.Date(2024, 3, 8, 12, 0, 0, 0, loc)
	b := time.Date(2024, 3, 22, 12, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 14 {
		t.Errorf("DaysBetween qua đổi giờ mùa hè: muốn 14, nhận %d", got)
	}
	// Khoảng 15 ngày qua DST phải chọn weekly, không được hụt thành 14 ngày daily
	if got := GranularityFor(a, time.Date(2024, 3, 23, 12, 0, 0, 0, loc)); got != GranularityWeekly {
		t.Errorf("Khoảng 15 ngày qua DST phải chọn weekly, nhận %s", got)
	}
}

func TestGranularityThresholds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		days int
		want Granularity
	}{
		{7, GranularityDaily},
		{14, GranularityDaily},
		{15, GranularityWeekly},
		{60, GranularityWeekly},
		{61, GranularityMonthly},
		{365, GranularityMonthly},
	}
	for _, tc := range cases {
		got := GranularityFor(start, AddDays(start, tc.days))
		if got != tc.want {
			t.Errorf("Khoảng %d ngày: muốn %s, nhận %s", tc.days, tc.want, got)
		}
	}
}

func TestIsWithinNextTwoWeeks(t *testing.T) {
	// 23:50 hôm nay: sự kiện "hôm nay" vẫn phải được tính dù giờ đã muộn
	now := time.Date(2024, 6, 12, 23, 50, 0, 0, time.Local)

	if !IsWithinNextTwoWeeks("2024-06-12", now) {
		t.Error("Sự kiện hôm nay phải nằm trong 14 ngày tới dù giờ đã qua")
	}
	if !IsWithinNextTwoWeeks("2024-06-26", now) {
		t.Error("Ngày thứ 14 kể từ hôm nay phải được tính")
	}
	if IsWithinNextTwoWeeks("2024-06-27", now) {
		t.Error("Ngày thứ 15 không được tính")
	}
	if IsWithinNextTwoWeeks("2024-06-11", now) {
		t.Error("Ngày hôm qua không được tính")
	}
	if IsWithinNextTwoWeeks("không phải ngày", now) {
		t.Error("Chuỗi ngày hỏng phải bị loại thay vì gây lỗi")
	}
}

func TestWindowValidate(t *testing.T) {
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	if _, err := NewWindow(start, end); err == nil {
		t.Error("Cửa sổ có end trước start phải bị từ chối ngay")
	}
	if _, err := NewWindow(start, start); err != nil {
		t.Errorf("Cửa sổ một thời điểm phải hợp lệ, nhận lỗi: %v", err)
	}
}
