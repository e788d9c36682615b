package engine

import (
	"testing"
	"time"

	activitymodels "biz_connect/internal/api/activity/models"
	membermodels "biz_connect/internal/api/member/models"
)

func TestBucketizeWeeklyExactly28Days(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 28).Add(-time.Millisecond)
	w := Window{Start: start, End: end}

	buckets, err := Bucketize(Snapshot{}, w, GranularityWeekly)
	if err != nil {
		t.Fatalf("Bucketize thất bại: %v", err)
	}

	if len(buckets) != 4 {
		t.Fatalf("Dải 28 ngày chia theo tuần phải cho đúng 4 bucket, nhận %d", len(buckets))
	}

	// Các bucket phải liền kề, không chồng lấn và phủ kín dải gốc
	if !buckets[0].Window.Start.Equal(w.Start) {
		t.Errorf("Bucket đầu phải bắt đầu đúng tại đầu dải: %v", buckets[0].Window.Start)
	}
	if !buckets[len(buckets)-1].Window.End.Equal(w.End) {
		t.Errorf("Bucket cuối phải kết thúc đúng tại cuối dải: %v", buckets[len(buckets)-1].Window.End)
	}
	for i := 1; i < len(buckets); i++ {
		wantStart := buckets[i-1].Window.End.Add(time.Millisecond)
		if !buckets[i].Window.Start.Equal(wantStart) {
			t.Errorf("Bucket %d phải bắt đầu ngay sau bucket trước: muốn %v, nhận %v",
				i, wantStart, buckets[i].Window.Start)
		}
	}
}

func TestBucketizeDailySplitsRecords(t *testing.T) {
	member := mkMember("An")
	snap := Snapshot{
		Members: []membermodels.Member{member},
		Referrals: []activitymodels.ActivityReferral{
			{MemberID: member.ID, OccurredAt: msAt(2024, 6, 1)},
			{MemberID: member.ID, OccurredAt: msAt(2024, 6, 1)},
			{MemberID: member.ID, OccurredAt: msAt(2024, 6, 3)},
		},
	}
	w := Window{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 3, 23, 59, 59, 999000000, time.UTC),
	}

	buckets, err := Bucketize(snap, w, GranularityDaily)
	if err != nil {
		t.Fatalf("Bucketize thất bại: %v", err)
	}

	if len(buckets) != 3 {
		t.Fatalf("3 ngày phải cho 3 bucket, nhận %d", len(buckets))
	}
	wantReferrals := []int{2, 0, 1}
	for i, want := range wantReferrals {
		if buckets[i].Totals.Referrals != want {
			t.Errorf("Bucket %s: muốn %d referral, nhận %d", buckets[i].Label, want, buckets[i].Totals.Referrals)
		}
	}
}

func TestBucketizeMonthlyAlignsToCalendar(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	buckets, err := Bucketize(Snapshot{}, w, GranularityMonthly)
	if err != nil {
		t.Fatalf("Bucketize thất bại: %v", err)
	}

	if len(buckets) != 3 {
		t.Fatalf("Giữa tháng 1 đến giữa tháng 3 phải cho 3 bucket, nhận %d", len(buckets))
	}
	wantLabels := []string{"01/2024", "02/2024", "03/2024"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("Nhãn bucket %d: muốn %s, nhận %s", i, want, buckets[i].Label)
		}
	}

	// Bucket giữa phải phủ trọn tháng 2, hai bucket biên cắt theo mép dải
	febStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !buckets[1].Window.Start.Equal(febStart) {
		t.Errorf("Bucket tháng 2 phải bắt đầu ngày 01/02: %v", buckets[1].Window.Start)
	}
	if !buckets[0].Window.Start.Equal(w.Start) {
		t.Errorf("Bucket đầu phải cắt theo đầu dải: %v", buckets[0].Window.Start)
	}
	if !buckets[2].Window.End.Equal(w.End) {
		t.Errorf("Bucket cuối phải cắt theo cuối dải: %v", buckets[2].Window.End)
	}
}

func TestBucketizeRejectsInvalidWindow(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	if _, err := Bucketize(Snapshot{}, w, GranularityDaily); err == nil {
		t.Error("Bucketize phải từ chối cửa sổ có end trước start")
	}
}
