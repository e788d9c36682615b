package authdto

import (
	membermodels "biz_connect/internal/api/member/models"
)

// LoginInput đầu vào đăng nhập bằng email và mật khẩu.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse kết quả đăng nhập thành công.
type LoginResponse struct {
	Token  string              `json:"token"`
	Member membermodels.Member `json:"member"`
}
