package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityClosedBusiness ghi nhận một giao dịch chốt thành công (activity_closed_business).
// MemberID là người báo cáo giao dịch, ThankedMemberID là thành viên được cảm ơn
// vì đã giới thiệu cơ hội. AmountCents lưu số tiền dưới dạng cents (int64) để tránh
// sai số dấu phẩy động khi cộng dồn trong báo cáo.
type ActivityClosedBusiness struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID        primitive.ObjectID `json:"memberId" bson:"memberId" index:"single:1"`
	ThankedMemberID primitive.ObjectID `json:"thankedMemberId,omitempty" bson:"thankedMemberId,omitempty"`
	AmountCents     int64              `json:"amountCents" bson:"amountCents"`
	Note            string             `json:"note,omitempty" bson:"note,omitempty"`

	OccurredAt int64 `json:"occurredAt" bson:"occurredAt" index:"single:-1"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}
