// Package polldto - DTO cho domain poll.
package polldto

// PollCreateInput đầu vào tạo khảo sát. Cần ít nhất 2 phương án.
type PollCreateInput struct {
	Question string   `json:"question" validate:"required,no_xss"`
	Options  []string `json:"options" validate:"required,min=2,dive,required,no_xss"`
}

// PollUpdateInput đầu vào cập nhật khảo sát.
// Không cho sửa danh sách phương án sau khi đã có lượt bình chọn,
// nên update chỉ nhận câu hỏi.
type PollUpdateInput struct {
	Question string `json:"question,omitempty" validate:"omitempty,no_xss"`
}

// PollVoteInput đầu vào bình chọn của thành viên đang đăng nhập.
type PollVoteInput struct {
	OptionIndex int `json:"optionIndex" validate:"gte=0"`
}

// PollOptionResult là kết quả của một phương án.
type PollOptionResult struct {
	Option string `json:"option"`
	Votes  int    `json:"votes"`
}

// PollResults là kết quả tổng hợp của một khảo sát.
type PollResults struct {
	PollID     string             `json:"pollId"`
	Question   string             `json:"question"`
	IsOpen     bool               `json:"isOpen"`
	Options    []PollOptionResult `json:"options"`
	TotalVotes int                `json:"totalVotes"`
}
