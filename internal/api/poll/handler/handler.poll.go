// Package pollhdl - Handler khảo sát.
package pollhdl

import (
	"fmt"

	basehdl "biz_connect/internal/api/base/handler"
	polldto "biz_connect/internal/api/poll/dto"
	pollmodels "biz_connect/internal/api/poll/models"
	pollsvc "biz_connect/internal/api/poll/service"
	"biz_connect/internal/common"
	"biz_connect/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PollHandler xử lý CRUD khảo sát cùng bình chọn, đóng poll và xem kết quả.
type PollHandler struct {
	*basehdl.BaseHandler[pollmodels.Poll, polldto.PollCreateInput, polldto.PollUpdateInput]
	PollService *pollsvc.PollService
}

// NewPollHandler tạo PollHandler mới.
func NewPollHandler() (*PollHandler, error) {
	pollService, err := pollsvc.NewPollService()
	if err != nil {
		return nil, fmt.Errorf("tạo PollService: %w", err)
	}
	return &PollHandler{
		BaseHandler: basehdl.NewBaseHandler[pollmodels.Poll, polldto.PollCreateInput, polldto.PollUpdateInput](pollService),
		PollService: pollService,
	}, nil
}

// HandleVote xử lý POST /polls/:id/vote (thành viên đang đăng nhập bình chọn).
func (h *PollHandler) HandleVote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pollID, err := h.requireObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		memberID := getMemberIDFromContext(c)
		if memberID == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input polldto.PollVoteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vote, err := h.PollService.CastVote(c.Context(), pollID, *memberID, input.OptionIndex)
		h.HandleResponse(c, vote, err)
		return nil
	})
}

// HandleClose xử lý PUT /polls/:id/close (quản trị viên đóng khảo sát).
func (h *PollHandler) HandleClose(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pollID, err := h.requireObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		poll, err := h.PollService.Close(c.Context(), pollID)
		h.HandleResponse(c, poll, err)
		return nil
	})
}

// HandleResults xử lý GET /polls/:id/results.
func (h *PollHandler) HandleResults(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pollID, err := h.requireObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		results, err := h.PollService.Results(c.Context(), pollID)
		h.HandleResponse(c, results, err)
		return nil
	})
}

// requireObjectID đọc và kiểm tra param :id
func (h *PollHandler) requireObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
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
