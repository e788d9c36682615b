package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityVisitor ghi nhận một khách mời tham dự buổi sinh hoạt (activity_visitors).
// HostMemberID là thành viên dẫn khách đến. CheckInCode là mã UUID dùng để
// khách tự check-in tại sự kiện. DidNotShow = true khi khách đăng ký nhưng vắng mặt:
// khách vắng mặt vẫn tính vào tổng số khách nhưng không tính cho thành viên dẫn.
type ActivityVisitor struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	HostMemberID    primitive.ObjectID `json:"hostMemberId" bson:"hostMemberId" index:"single:1"`
	VisitorName     string             `json:"visitorName" bson:"visitorName" validate:"required,no_xss"`
	VisitorBusiness string             `json:"visitorBusiness,omitempty" bson:"visitorBusiness,omitempty"`
	VisitorEmail    string             `json:"visitorEmail,omitempty" bson:"visitorEmail,omitempty"`
	CheckInCode     string             `json:"checkInCode,omitempty" bson:"checkInCode,omitempty" index:"unique,sparse"`
	CheckedInAt     int64              `json:"checkedInAt,omitempty" bson:"checkedInAt,omitempty"`
	DidNotShow      bool               `json:"didNotShow" bson:"didNotShow"`

	OccurredAt int64 `json:"occurredAt" bson:"occurredAt" index:"single:-1"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}
