package engine

// MetricKey chọn chỉ số dùng để xếp hạng thành viên.
type MetricKey string

const (
	MetricReferrals      MetricKey = "referrals"
	MetricVisitors       MetricKey = "visitors"
	MetricOneToOnes      MetricKey = "oneToOnes"
	MetricClosedBusiness MetricKey = "closedBusiness"
)

// metricValue đọc giá trị của key từ một MemberMetric.
// Giao dịch chốt xếp hạng theo tổng tiền (cents), không theo số giao dịch.
func metricValue(m MemberMetric, key MetricKey) int64 {
	switch key {
	case MetricReferrals:
		return int64(m.ReferralCount)
	case MetricVisitors:
		return int64(m.VisitorCount)
	case MetricOneToOnes:
		return int64(m.OneToOneCount)
	case MetricClosedBusiness:
		return m.ClosedBusinessCents
	default:
		return 0
	}
}

// TopPerformer trả về thành viên có giá trị cao nhất theo key.
//
// Khi nhiều thành viên bằng điểm nhau, người đứng trước trong danh sách
// đầu vào thắng, nên các lần gọi lặp lại với cùng dữ liệu luôn cho cùng
// kết quả. Khi mọi thành viên đều 0 điểm thì không có ai dẫn đầu và hàm
// trả về nil thay vì chọn tùy tiện một người điểm 0.
func TopPerformer(metrics []MemberMetric, key MetricKey) *MemberMetric {
	var best *MemberMetric
	var bestValue int64
	for i := range metrics {
		value := metricValue(metrics[i], key)
		if value <= 0 {
			continue
		}
		if best == nil || value > bestValue {
			best = &metrics[i]
			bestValue = value
		}
	}
	return best
}
