package engine

import "time"

// Bucket là một sub-window của dải báo cáo kèm tổng chỉ số trong đó,
// dùng trực tiếp làm một điểm dữ liệu trên biểu đồ.
type Bucket struct {
	Label  string `json:"label"`
	Window Window `json:"window"`
	Totals Totals `json:"totals"`
}

// Bucketize chia dải [w.Start, w.End] thành các bucket liền kề, không chồng
// lấn, phủ kín đúng dải gốc, rồi chạy Aggregate độc lập trên từng bucket.
// Kết quả theo thứ tự thời gian tăng dần.
//
// Cách chia theo độ mịn:
//   - daily: mỗi ngày lịch một bucket, bucket đầu và cuối cắt theo mép dải.
//   - weekly: các khoảng 7 ngày liên tiếp tính từ đầu dải, khoảng cuối cắt
//     theo mép dải. Dải đúng 28 ngày cho đúng 4 bucket.
//   - monthly: mỗi tháng lịch một bucket, cắt theo mép dải.
//
// Độ mịn do caller chọn (thường bằng GranularityFor), Bucketize không tự suy.
func Bucketize(snap Snapshot, w Window, granularity Granularity) ([]Bucket, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var buckets []Bucket
	for cur := w.Start; !cur.After(w.End); {
		next := nextBoundary(cur, granularity)

		end := next.Add(-time.Millisecond)
		if end.After(w.End) {
			end = w.End
		}

		bw := Window{Start: cur, End: end}
		report, err := Aggregate(snap, bw)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, Bucket{
			Label:  bucketLabel(bw, granularity),
			Window: bw,
			Totals: report.Totals,
		})

		cur = next
	}
	return buckets, nil
}

// nextBoundary trả về thời điểm bắt đầu của bucket kế tiếp.
func nextBoundary(cur time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return AddDays(cur, 7)
	case GranularityMonthly:
		year, month, _ := cur.Date()
		return time.Date(year, month, 1, 0, 0, 0, 0, cur.Location()).AddDate(0, 1, 0)
	default:
		return StartOfDay(cur).AddDate(0, 0, 1)
	}
}

// bucketLabel sinh nhãn hiển thị cho một bucket.
func bucketLabel(w Window, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		return w.Start.Format("02/01") + " - " + w.End.Format("02/01")
	case GranularityMonthly:
		return w.Start.Format("01/2006")
	default:
		return w.Start.Format("02/01/2006")
	}
}
