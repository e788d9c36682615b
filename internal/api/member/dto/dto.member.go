package memberdto

// MemberCreateInput đầu vào tạo thành viên (CRUD, chỉ quản trị viên).
// Mật khẩu ban đầu do quản trị viên đặt, thành viên đổi sau khi đăng nhập lần đầu.
type MemberCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Business string `json:"business,omitempty"`
	Password string `json:"password" validate:"required,strong_password"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	JoinedAt int64  `json:"joinedAt,omitempty"`
}

// MemberUpdateInput đầu vào cập nhật thông tin thành viên.
type MemberUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone    string `json:"phone,omitempty"`
	Business string `json:"business,omitempty"`
	JoinedAt int64  `json:"joinedAt,omitempty"`
}

// MemberChangePasswordInput đầu vào đổi mật khẩu của chính thành viên.
type MemberChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// MemberSetActiveInput đầu vào kích hoạt / ngưng hoạt động thành viên (quản trị viên).
type MemberSetActiveInput struct {
	IsActive bool `json:"isActive"`
}
