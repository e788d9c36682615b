// Package reportdto - DTO cho domain report.
package reportdto

import "biz_connect/internal/api/report/engine"

// DashboardQuery là query string của GET /reports/dashboard.
// Start và End theo "2006-01-02"; bỏ trống lấy 30 ngày gần nhất.
type DashboardQuery struct {
	Start string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `query:"end" validate:"omitempty,datetime=2006-01-02"`
}

// ChartQuery là query string của GET /reports/chart.
// Granularity bỏ trống thì chọn tự động theo độ dài khoảng.
type ChartQuery struct {
	Start       string `query:"start" validate:"required,datetime=2006-01-02"`
	End         string `query:"end" validate:"required,datetime=2006-01-02"`
	Granularity string `query:"granularity" validate:"omitempty,oneof=daily weekly monthly"`
}

// TopPerformers là người dẫn đầu từng hạng mục trong cửa sổ.
// Hạng mục không có ai hoạt động thì entry là nil.
type TopPerformers struct {
	Referrals      *engine.MemberMetric `json:"referrals"`
	Visitors       *engine.MemberMetric `json:"visitors"`
	OneToOnes      *engine.MemberMetric `json:"oneToOnes"`
	ClosedBusiness *engine.MemberMetric `json:"closedBusiness"`
}

// WeeklyReport là báo cáo "từ thứ Ba gần nhất" kèm người dẫn đầu.
type WeeklyReport struct {
	Report engine.Report `json:"report"`
	Top    TopPerformers `json:"top"`
}
