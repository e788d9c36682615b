// Package models - model khảo sát (Poll) và lượt bình chọn (PollVote).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Poll là một khảo sát nội bộ của nhóm với danh sách phương án cố định.
// Poll đã có lượt bình chọn thì không xóa được mà chỉ đóng lại (IsOpen = false)
// để giữ toàn vẹn kết quả.
type Poll struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Question          string             `json:"question" bson:"question" validate:"required,no_xss"`
	Options           []string           `json:"options" bson:"options"`
	IsOpen            bool               `json:"isOpen" bson:"isOpen"`
	CreatedByMemberID primitive.ObjectID `json:"createdByMemberId,omitempty" bson:"createdByMemberId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	_Relationships struct{} `relationship:"collection:poll_votes,field:pollId,message:Không thể xóa poll vì đã có %d lượt bình chọn. Hãy đóng poll thay vì xóa."`
}

// PollVote là một lượt bình chọn của thành viên cho một poll.
// Index unique (pollId, memberId) chặn bình chọn trùng ở tầng dữ liệu.
type PollVote struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PollID      primitive.ObjectID `json:"pollId" bson:"pollId" index:"compound:poll_vote_member_unique"`
	MemberID    primitive.ObjectID `json:"memberId" bson:"memberId" index:"compound:poll_vote_member_unique"`
	OptionIndex int                `json:"optionIndex" bson:"optionIndex"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
