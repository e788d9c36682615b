// Package eventdto - DTO cho domain event.
package eventdto

// EventCreateInput đầu vào tạo sự kiện.
// Date bắt buộc theo "2006-01-02"; StartTime và EndTime theo "15:04".
type EventCreateInput struct {
	Name              string `json:"name" validate:"required,no_xss"`
	Description       string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime           string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Location          string `json:"location,omitempty"`
	PresenterMemberID string `json:"presenterMemberId,omitempty"`
}

// EventUpdateInput đầu vào cập nhật sự kiện.
// Duyệt và hủy không đi qua update thường mà dùng endpoint riêng.
type EventUpdateInput struct {
	Name              string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description       string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Date              string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime         string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime           string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Location          string `json:"location,omitempty"`
	PresenterMemberID string `json:"presenterMemberId,omitempty"`
}
