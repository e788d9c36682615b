// Package models - các model hoạt động (activity) của thành viên.
// Bốn loại hoạt động được ghi nhận: referral, visitor, one-to-one và closed business.
// OccurredAt là thời điểm hoạt động diễn ra (Unix ms), nguồn dữ liệu chính cho báo cáo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityReferral ghi nhận một lượt giới thiệu kinh doanh (activity_referrals).
// MemberID là người giới thiệu, ReceiverMemberID là người nhận referral.
type ActivityReferral struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID         primitive.ObjectID `json:"memberId" bson:"memberId" index:"single:1"`
	ReceiverMemberID primitive.ObjectID `json:"receiverMemberId" bson:"receiverMemberId" index:"single:1"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`

	// Inside = true khi referral đến từ thành viên trong nhóm
	Inside bool `json:"inside" bson:"inside"`

	OccurredAt int64 `json:"occurredAt" bson:"occurredAt" index:"single:-1"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}
