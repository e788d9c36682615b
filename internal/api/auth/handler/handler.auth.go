// Package authhdl - Handler xác thực thành viên.
package authhdl

import (
	"fmt"

	authdto "biz_connect/internal/api/auth/dto"
	authsvc "biz_connect/internal/api/auth/service"
	basehdl "biz_connect/internal/api/base/handler"
	"biz_connect/internal/common"
	"biz_connect/internal/global"
	"biz_connect/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler xử lý các route đăng nhập / đăng xuất / profile.
type AuthHandler struct {
	AuthService *authsvc.AuthService
}

// NewAuthHandler tạo AuthHandler mới.
func NewAuthHandler() (*AuthHandler, error) {
	authService, err := authsvc.NewAuthService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuthService: %w", err)
	}
	return &AuthHandler{AuthService: authService}, nil
}

// HandleLogin xử lý POST /auth/login.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Dữ liệu gửi lên không đúng định dạng JSON",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		result, err := h.AuthService.Login(c.Context(), &input)
		if err == nil {
			logger.LogAuth("login", c, map[string]interface{}{"email": input.Email})
		}
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogout xử lý POST /auth/logout.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		memberID := getMemberIDFromContext(c)
		if memberID == nil {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		err := h.AuthService.Logout(c.Context(), *memberID)
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleProfile xử lý GET /auth/profile.
func (h *AuthHandler) HandleProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		memberID := getMemberIDFromContext(c)
		if memberID == nil {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		member, err := h.AuthService.Profile(c.Context(), *memberID)
		basehdl.HandleResponse(c, member, err)
		return nil
	})
}

// getMemberIDFromContext lấy member ID do AuthMiddleware lưu vào Locals
func getMemberIDFromContext(c fiber.Ctx) *primitive.ObjectID {
	memberIDStr, ok := c.Locals("member_id").(string)
	if !ok || memberIDStr == "" {
		return nil
	}
	memberID, err := primitive.ObjectIDFromHex(memberIDStr)
	if err != nil {
		return nil
	}
	return &memberID
}
