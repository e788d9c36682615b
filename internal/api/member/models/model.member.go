// Package models - model thành viên (Member) thuộc domain member.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member định nghĩa mô hình thành viên của nhóm kết nối kinh doanh.
// Token chứa JWT mới nhất của thành viên, được cập nhật mỗi lần login và xóa khi logout.
// Password lưu hash bcrypt, không bao giờ trả về qua API.
type Member struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required,no_xss"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Business string             `json:"business,omitempty" bson:"business,omitempty"`
	Password string             `json:"-" bson:"password,omitempty"`
	Token    string             `json:"-" bson:"token,omitempty"`
	IsAdmin  bool               `json:"isAdmin" bson:"isAdmin"`
	IsActive bool               `json:"isActive" bson:"isActive"`

	// JoinedAt là ngày gia nhập nhóm (Unix ms), dùng cho thống kê thâm niên
	JoinedAt  int64 `json:"joinedAt,omitempty" bson:"joinedAt,omitempty"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
