// Package memberhdl - Handler thành viên.
package memberhdl

import (
	"fmt"

	basehdl "biz_connect/internal/api/base/handler"
	memberdto "biz_connect/internal/api/member/dto"
	membermodels "biz_connect/internal/api/member/models"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/common"
	"biz_connect/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberHandler xử lý CRUD thành viên và các thao tác quản trị.
type MemberHandler struct {
	*basehdl.BaseHandler[membermodels.Member, memberdto.MemberCreateInput, memberdto.MemberUpdateInput]
	MemberService *membersvc.MemberService
}

// NewMemberHandler tạo MemberHandler mới.
func NewMemberHandler() (*MemberHandler, error) {
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	return &MemberHandler{
		BaseHandler:   basehdl.NewBaseHandler[membermodels.Member, memberdto.MemberCreateInput, memberdto.MemberUpdateInput](memberService),
		MemberService: memberService,
	}, nil
}

// HandleChangePassword xử lý PUT /members/change-password (thành viên tự đổi mật khẩu của mình).
func (h *MemberHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		memberID := getMemberIDFromContext(c)
		if memberID == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input memberdto.MemberChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.MemberService.ChangePassword(c.Context(), *memberID, input.OldPassword, input.NewPassword)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetActive xử lý PUT /members/:id/set-active (quản trị viên kích hoạt / ngưng hoạt động thành viên).
func (h *MemberHandler) HandleSetActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input memberdto.MemberSetActiveInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		member, err := h.MemberService.SetActive(c.Context(), utility.String2ObjectID(id), input.IsActive)
		h.HandleResponse(c, member, err)
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
