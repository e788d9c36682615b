package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityOneToOne ghi nhận một buổi gặp gỡ 1-1 giữa hai thành viên (activity_one_to_ones).
// Mỗi buổi gặp được lưu một document duy nhất, tính một lần cho mỗi bên tham gia.
type ActivityOneToOne struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberAID primitive.ObjectID `json:"memberAId" bson:"memberAId" index:"single:1"`
	MemberBID primitive.ObjectID `json:"memberBId" bson:"memberBId" index:"single:1"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`

	OccurredAt int64 `json:"occurredAt" bson:"occurredAt" index:"single:-1"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}
