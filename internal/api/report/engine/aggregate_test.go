package engine

import (
	"reflect"
	"testing"
	"time"

	activitymodels "biz_connect/internal/api/activity/models"
	membermodels "biz_connect/internal/api/member/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// msAt trả về Unix ms của một ngày lúc 12:00 trưa
func msAt(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func mkMember(name string) membermodels.Member {
	return membermodels.Member{ID: primitive.NewObjectID(), Name: name}
}

func juneWindow(t *testing.T) Window {
	t.Helper()
	w, err := NewWindow(
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.UTC),
	)
	if err != nil {
		t.Fatalf("Tạo cửa sổ thất bại: %v", err)
	}
	return w
}

func TestFilterReferralsByWindow(t *testing.T) {
	member := mkMember("An")
	receiver := mkMember("Bình")
	referrals := []activitymodels.ActivityReferral{
		{MemberID: member.ID, ReceiverMemberID: receiver.ID, OccurredAt: msAt(2024, 6, 1)},
		{MemberID: member.ID, ReceiverMemberID: receiver.ID, OccurredAt: msAt(2024, 6, 10)},
		{MemberID: member.ID, ReceiverMemberID: receiver.ID, OccurredAt: msAt(2024, 6, 20)},
	}
	original := make([]activitymodels.ActivityReferral, len(referrals))
	copy(original, referrals)

	got := FilterReferrals(referrals, juneWindow(t))

	if len(got) != 1 {
		t.Fatalf("Cửa sổ [05/06, 15/06] phải giữ đúng 1 referral, nhận %d", len(got))
	}
	if got[0].OccurredAt != msAt(2024, 6, 10) {
		t.Errorf("Bản ghi được giữ phải là ngày 10/06, nhận %d", got[0].OccurredAt)
	}
	if !reflect.DeepEqual(referrals, original) {
		t.Error("Lọc không được sửa slice đầu vào")
	}
}

func TestFilterDropsMalformedTimestamps(t *testing.T) {
	member := mkMember("An")
	referrals := []activitymodels.ActivityReferral{
		{MemberID: member.ID, OccurredAt: 0},
		{MemberID: member.ID, OccurredAt: -5},
		{MemberID: member.ID, OccurredAt: msAt(2024, 6, 10)},
	}

	got := FilterReferrals(referrals, juneWindow(t))
	if len(got) != 1 {
		t.Errorf("Timestamp hỏng phải bị loại lặng lẽ: muốn 1 bản ghi, nhận %d", len(got))
	}
}

func TestFilterIsStable(t *testing.T) {
	member := mkMember("An")
	referrals := []activitymodels.ActivityReferral{
		{MemberID: member.ID, Description: "thứ nhất", OccurredAt: msAt(2024, 6, 14)},
		{MemberID: member.ID, Description: "thứ hai", OccurredAt: msAt(2024, 6, 6)},
		{MemberID: member.ID, Description: "thứ ba", OccurredAt: msAt(2024, 6, 10)},
	}

	got := FilterReferrals(referrals, juneWindow(t))
	if len(got) != 3 {
		t.Fatalf("Cả 3 bản ghi đều trong cửa sổ, nhận %d", len(got))
	}
	for i, want := range []string{"thứ nhất", "thứ hai", "thứ ba"} {
		if got[i].Description != want {
			t.Errorf("Lọc phải giữ nguyên thứ tự nguồn: vị trí %d muốn %q, nhận %q", i, want, got[i].Description)
		}
	}
}

func TestAggregateRejectsInvalidWindow(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	if _, err := Aggregate(Snapshot{}, w); err == nil {
		t.Error("Aggregate phải từ chối cửa sổ có end trước start")
	}
}

func TestAggregateOneToOneSymmetry(t *testing.T) {
	a := mkMember("An")
	b := mkMember("Bình")
	snap := Snapshot{
		Members: []membermodels.Member{a, b},
		OneToOnes: []activitymodels.ActivityOneToOne{
			{MemberAID: a.ID, MemberBID: b.ID, OccurredAt: msAt(2024, 6, 10)},
		},
	}

	report, err := Aggregate(snap, juneWindow(t))
	if err != nil {
		t.Fatalf("Aggregate thất bại: %v", err)
	}

	if report.PerMember[0].OneToOneCount != 1 {
		t.Errorf("Bên A phải được tính 1 buổi gặp, nhận %d", report.PerMember[0].OneToOneCount)
	}
	if report.PerMember[1].OneToOneCount != 1 {
		t.Errorf("Bên B phải được tính 1 buổi gặp, nhận %d", report.PerMember[1].OneToOneCount)
	}
	if report.Totals.OneToOnes != 1 {
		t.Errorf("Tổng nhóm phải đếm theo số buổi gặp, không nhân đôi: muốn 1, nhận %d", report.Totals.OneToOnes)
	}
}

func TestAggregateNoShowExclusion(t *testing.T) {
	host := mkMember("An")
	snap := Snapshot{
		Members: []membermodels.Member{host},
		Visitors: []activitymodels.ActivityVisitor{
			{HostMemberID: host.ID, VisitorName: "Khách có mặt", OccurredAt: msAt(2024, 6, 10)},
			{HostMemberID: host.ID, VisitorName: "Khách vắng", DidNotShow: true, OccurredAt: msAt(2024, 6, 11)},
		},
	}

	report, err := Aggregate(snap, juneWindow(t))
	if err != nil {
		t.Fatalf("Aggregate thất bại: %v", err)
	}

	if report.PerMember[0].VisitorCount != 1 {
		t.Errorf("Khách vắng mặt không được tính cho host: muốn 1, nhận %d", report.PerMember[0].VisitorCount)
	}
	if report.Totals.VisitorsAttended != 1 {
		t.Errorf("Khách vắng mặt không được tính vào số có mặt: muốn 1, nhận %d", report.Totals.VisitorsAttended)
	}
	if report.Totals.VisitorsTotal != 2 {
		t.Errorf("Khách vắng mặt vẫn phải đếm vào tổng số khách: muốn 2, nhận %d", report.Totals.VisitorsTotal)
	}
}

func TestAggregateClosedBusinessExactCents(t *testing.T) {
	member := mkMember("An")
	// 1500.50 + 299.49 = 1799.99, cộng bằng cent nguyên nên không lệch
	snap := Snapshot{
		Members: []membermodels.Member{member},
		ClosedBusiness: []activitymodels.ActivityClosedBusiness{
			{MemberID: member.ID, AmountCents: 150050, OccurredAt: msAt(2024, 6, 10)},
			{MemberID: member.ID, AmountCents: 29949, OccurredAt: msAt(2024, 6, 11)},
		},
	}

	report, err := Aggregate(snap, juneWindow(t))
	if err != nil {
		t.Fatalf("Aggregate thất bại: %v", err)
	}

	if report.PerMember[0].ClosedBusinessCents != 179999 {
		t.Errorf("Tổng tiền phải đúng 179999 cent, nhận %d", report.PerMember[0].ClosedBusinessCents)
	}
	if report.PerMember[0].ClosedBusinessCount != 2 {
		t.Errorf("Số giao dịch phải là 2, nhận %d", report.PerMember[0].ClosedBusinessCount)
	}
	if report.Totals.ClosedBusinessCents != 179999 {
		t.Errorf("Tổng nhóm phải đúng 179999 cent, nhận %d", report.Totals.ClosedBusinessCents)
	}
}

func TestAggregateRetainsZeroActivityMembers(t *testing.T) {
	active := mkMember("An")
	idle := mkMember("Bình")
	snap := Snapshot{
		Members: []membermodels.Member{active, idle},
		Referrals: []activitymodels.ActivityReferral{
			{MemberID: active.ID, OccurredAt: msAt(2024, 6, 10)},
		},
	}

	report, err := Aggregate(snap, juneWindow(t))
	if err != nil {
		t.Fatalf("Aggregate thất bại: %v", err)
	}

	if len(report.PerMember) != 2 {
		t.Fatalf("Thành viên không hoạt động vẫn phải có mặt trong kết quả: muốn 2, nhận %d", len(report.PerMember))
	}
	idleMetric := report.PerMember[1]
	if idleMetric.Member.ID != idle.ID {
		t.Fatal("Thứ tự PerMember phải theo thứ tự danh sách thành viên đầu vào")
	}
	if idleMetric.ReferralCount != 0 || idleMetric.VisitorCount != 0 ||
		idleMetric.OneToOneCount != 0 || idleMetric.ClosedBusinessCents != 0 {
		t.Errorf("Thành viên không hoạt động phải có chỉ số toàn 0, nhận %+v", idleMetric)
	}
}

func TestAggregateTotalsMatchFilteredLengths(t *testing.T) {
	a := mkMember("An")
	b := mkMember("Bình")
	w := juneWindow(t)
	snap := Snapshot{
		Members: []membermodels.Member{a, b},
		Referrals: []activitymodels.ActivityReferral{
			{MemberID: a.ID, OccurredAt: msAt(2024, 6, 6)},
			{MemberID: b.ID, OccurredAt: msAt(2024, 6, 10)},
			{MemberID: a.ID, OccurredAt: msAt(2024, 6, 20)},
		},
	}

	report, err := Aggregate(snap, w)
	if err != nil {
		t.Fatalf("Aggregate thất bại: %v", err)
	}

	filtered := FilterReferrals(snap.Referrals, w)
	if report.Totals.Referrals != len(filtered) {
		t.Errorf("Tổng referral phải bằng độ dài tập đã lọc: muốn %d, nhận %d", len(filtered), report.Totals.Referrals)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	a := mkMember("An")
	b := mkMember("Bình")
	w := juneWindow(t)
	snap := Snapshot{
		Members: []membermodels.Member{a, b},
		Referrals: []activitymodels.ActivityReferral{
			{MemberID: a.ID, OccurredAt: msAt(2024, 6, 6)},
		},
		OneToOnes: []activitymodels.ActivityOneToOne{
			{MemberAID: a.ID, MemberBID: b.ID, OccurredAt: msAt(2024, 6, 9)},
		},
		ClosedBusiness: []activitymodels.ActivityClosedBusiness{
			{MemberID: b.ID, AmountCents: 50000, OccurredAt: msAt(2024, 6, 12)},
		},
	}

	first, err := Aggregate(snap, w)
	if err != nil {
		t.Fatalf("Lần gọi thứ nhất thất bại: %v", err)
	}
	second, err := Aggregate(snap, w)
	if err != nil {
		t.Fatalf("Lần gọi thứ hai thất bại: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Cùng đầu vào phải cho kết quả giống hệt nhau giữa các lần gọi")
	}
}
