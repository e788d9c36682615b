package engine

import (
	activitymodels "biz_connect/internal/api/activity/models"
	membermodels "biz_connect/internal/api/member/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot là bản chụp read-only của dữ liệu hoạt động tại một thời điểm.
// Tầng service dựng snapshot một lần cho mỗi request báo cáo; engine không
// bao giờ sửa nội dung của nó.
type Snapshot struct {
	Members        []membermodels.Member
	Referrals      []activitymodels.ActivityReferral
	Visitors       []activitymodels.ActivityVisitor
	OneToOnes      []activitymodels.ActivityOneToOne
	ClosedBusiness []activitymodels.ActivityClosedBusiness
}

// MemberMetric là chỉ số hoạt động của một thành viên trong cửa sổ.
// ClosedBusinessCents cộng dồn bằng số nguyên cent để không lệch dấu phẩy động.
type MemberMetric struct {
	Member              membermodels.Member `json:"member"`
	ReferralCount       int                 `json:"referralCount"`
	VisitorCount        int                 `json:"visitorCount"`
	OneToOneCount       int                 `json:"oneToOneCount"`
	ClosedBusinessCount int                 `json:"closedBusinessCount"`
	ClosedBusinessCents int64               `json:"closedBusinessCents"`
}

// Totals là tổng toàn nhóm trong cửa sổ. Các tổng lấy theo độ dài tập đã
// lọc chứ không cộng dồn chỉ số từng thành viên, vì một buổi gặp 1-1 tăng
// tally của cả hai bên nhưng chỉ là một buổi gặp.
type Totals struct {
	Referrals           int   `json:"referrals"`
	VisitorsAttended    int   `json:"visitorsAttended"`
	VisitorsTotal       int   `json:"visitorsTotal"`
	OneToOnes           int   `json:"oneToOnes"`
	ClosedBusinessCount int   `json:"closedBusinessCount"`
	ClosedBusinessCents int64 `json:"closedBusinessCents"`
}

// Report là kết quả tổng hợp của một cửa sổ.
type Report struct {
	Window    Window         `json:"window"`
	PerMember []MemberMetric `json:"perMember"`
	Totals    Totals         `json:"totals"`
}

// Aggregate tổng hợp chỉ số hoạt động theo thành viên trong cửa sổ w.
//
// Quy tắc tính:
//   - Referral tính cho thành viên khởi tạo (MemberID).
//   - Khách mời tính cho thành viên dẫn khách (HostMemberID); khách vắng mặt
//     không tính cho host nhưng vẫn đếm vào VisitorsTotal.
//   - Buổi gặp 1-1 tăng đúng 1 cho mỗi bên tham gia; tổng nhóm đếm theo số
//     buổi gặp, không nhân đôi.
//   - Giao dịch chốt tính cho thành viên báo cáo (MemberID), cộng cent nguyên.
//
// Thành viên không có hoạt động nào vẫn xuất hiện trong PerMember với chỉ số
// toàn 0. Thứ tự PerMember giữ nguyên thứ tự danh sách Members đầu vào.
// Bản ghi tham chiếu member không có trong danh sách chỉ đóng góp vào tổng.
func Aggregate(snap Snapshot, w Window) (Report, error) {
	if err := w.Validate(); err != nil {
		return Report{}, err
	}

	referrals := FilterReferrals(snap.Referrals, w)
	attended := FilterVisitors(snap.Visitors, w, false)
	allVisitors := FilterVisitors(snap.Visitors, w, true)
	oneToOnes := FilterOneToOnes(snap.OneToOnes, w)
	closed := FilterClosedBusiness(snap.ClosedBusiness, w)

	metrics := make([]MemberMetric, len(snap.Members))
	index := make(map[primitive.ObjectID]*MemberMetric, len(snap.Members))
	for i, member := range snap.Members {
		metrics[i] = MemberMetric{Member: member}
		index[member.ID] = &metrics[i]
	}

	for _, r := range referrals {
		if m, ok := index[r.MemberID]; ok {
			m.ReferralCount++
		}
	}
	for _, v := range attended {
		if m, ok := index[v.HostMemberID]; ok {
			m.VisitorCount++
		}
	}
	for _, o := range oneToOnes {
		if m, ok := index[o.MemberAID]; ok {
			m.OneToOneCount++
		}
		if m, ok := index[o.MemberBID]; ok {
			m.OneToOneCount++
		}
	}
	var closedCents int64
	for _, c := range closed {
		closedCents += c.AmountCents
		if m, ok := index[c.MemberID]; ok {
			m.ClosedBusinessCount++
			m.ClosedBusinessCents += c.AmountCents
		}
	}

	return Report{
		Window:    w,
		PerMember: metrics,
		Totals: Totals{
			Referrals:           len(referrals),
			VisitorsAttended:    len(attended),
			VisitorsTotal:       len(allVisitors),
			OneToOnes:           len(oneToOnes),
			ClosedBusinessCount: len(closed),
			ClosedBusinessCents: closedCents,
		},
	}, nil
}
