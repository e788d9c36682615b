// Package models - model sự kiện (Event) thuộc domain event.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event là một buổi sinh hoạt hoặc hoạt động được lên lịch của nhóm.
// Date theo định dạng "2006-01-02", StartTime và EndTime theo "15:04".
// Sự kiện mới tạo chưa được duyệt (Approved = false) và chỉ hiện trong danh
// sách sắp tới sau khi quản trị viên duyệt. Sự kiện bị hủy giữ nguyên document
// với Cancelled = true để còn lịch sử, không xóa.
type Event struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" validate:"required,no_xss"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Date              string             `json:"date" bson:"date" index:"single:1"`
	StartTime         string             `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime           string             `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Location          string             `json:"location,omitempty" bson:"location,omitempty"`
	PresenterMemberID primitive.ObjectID `json:"presenterMemberId,omitempty" bson:"presenterMemberId,omitempty"`
	Approved          bool               `json:"approved" bson:"approved"`
	Cancelled         bool               `json:"cancelled" bson:"cancelled"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
