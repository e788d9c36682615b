// Package activitydto - DTO cho các hoạt động của thành viên.
// Các field *MemberId nhận string và được convert tự động sang ObjectID khi transform.
// OccurredAt là Unix ms; bỏ trống sẽ lấy thời điểm hiện tại.
package activitydto

// ReferralCreateInput đầu vào ghi nhận referral.
type ReferralCreateInput struct {
	MemberID         string `json:"memberId" validate:"required"`
	ReceiverMemberID string `json:"receiverMemberId" validate:"required"`
	Description      string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Inside           bool   `json:"inside,omitempty"`
	OccurredAt       int64  `json:"occurredAt,omitempty"`
}

// ReferralUpdateInput đầu vào cập nhật referral.
type ReferralUpdateInput struct {
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Inside      bool   `json:"inside,omitempty"`
	OccurredAt  int64  `json:"occurredAt,omitempty"`
}

// VisitorCreateInput đầu vào ghi nhận khách mời.
type VisitorCreateInput struct {
	HostMemberID    string `json:"hostMemberId" validate:"required"`
	VisitorName     string `json:"visitorName" validate:"required,no_xss"`
	VisitorBusiness string `json:"visitorBusiness,omitempty"`
	VisitorEmail    string `json:"visitorEmail,omitempty" validate:"omitempty,email"`
	OccurredAt      int64  `json:"occurredAt,omitempty"`
}

// VisitorUpdateInput đầu vào cập nhật khách mời (ví dụ: đánh dấu vắng mặt).
type VisitorUpdateInput struct {
	VisitorName     string `json:"visitorName,omitempty" validate:"omitempty,no_xss"`
	VisitorBusiness string `json:"visitorBusiness,omitempty"`
	VisitorEmail    string `json:"visitorEmail,omitempty" validate:"omitempty,email"`
	DidNotShow      bool   `json:"didNotShow,omitempty"`
	OccurredAt      int64  `json:"occurredAt,omitempty"`
}

// OneToOneCreateInput đầu vào ghi nhận buổi gặp 1-1.
type OneToOneCreateInput struct {
	MemberAID  string `json:"memberAId" validate:"required"`
	MemberBID  string `json:"memberBId" validate:"required"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,no_xss"`
	OccurredAt int64  `json:"occurredAt,omitempty"`
}

// OneToOneUpdateInput đầu vào cập nhật buổi gặp 1-1.
type OneToOneUpdateInput struct {
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,no_xss"`
	OccurredAt int64  `json:"occurredAt,omitempty"`
}

// ClosedBusinessCreateInput đầu vào ghi nhận giao dịch chốt thành công.
// Amount nhận chuỗi thập phân (ví dụ "1500.50") và được parse sang cents,
// tránh sai số dấu phẩy động từ phía client.
type ClosedBusinessCreateInput struct {
	MemberID        string `json:"memberId" validate:"required"`
	ThankedMemberID string `json:"thankedMemberId,omitempty"`
	Amount          string `json:"amount" validate:"required"`
	Note            string `json:"note,omitempty" validate:"omitempty,no_xss"`
	OccurredAt      int64  `json:"occurredAt,omitempty"`
}

// ClosedBusinessUpdateInput đầu vào cập nhật giao dịch.
type ClosedBusinessUpdateInput struct {
	Amount     string `json:"amount,omitempty"`
	Note       string `json:"note,omitempty" validate:"omitempty,no_xss"`
	OccurredAt int64  `json:"occurredAt,omitempty"`
}
