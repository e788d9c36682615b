// Package activityhdl - Handler cho các hoạt động của thành viên.
// Referral, khách mời và gặp 1-1 dùng trực tiếp CRUD của BaseHandler.
// ClosedBusiness cần xử lý riêng vì số tiền nhận vào dạng chuỗi thập phân.
package activityhdl

import (
	"fmt"

	activitydto "biz_connect/internal/api/activity/dto"
	models "biz_connect/internal/api/activity/models"
	activitysvc "biz_connect/internal/api/activity/service"
	basehdl "biz_connect/internal/api/base/handler"
	basesvc "biz_connect/internal/api/base/service"
	"biz_connect/internal/common"
	"biz_connect/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReferralHandler xử lý CRUD referral.
type ReferralHandler struct {
	*basehdl.BaseHandler[models.ActivityReferral, activitydto.ReferralCreateInput, activitydto.ReferralUpdateInput]
	ReferralService *activitysvc.ReferralService
}

// NewReferralHandler tạo ReferralHandler mới.
func NewReferralHandler() (*ReferralHandler, error) {
	service, err := activitysvc.NewReferralService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReferralService: %w", err)
	}
	return &ReferralHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.ActivityReferral, activitydto.ReferralCreateInput, activitydto.ReferralUpdateInput](service),
		ReferralService: service,
	}, nil
}

// VisitorHandler xử lý CRUD khách mời và check-in.
type VisitorHandler struct {
	*basehdl.BaseHandler[models.ActivityVisitor, activitydto.VisitorCreateInput, activitydto.VisitorUpdateInput]
	VisitorService *activitysvc.VisitorService
}

// NewVisitorHandler tạo VisitorHandler mới.
func NewVisitorHandler() (*VisitorHandler, error) {
	service, err := activitysvc.NewVisitorService()
	if err != nil {
		return nil, fmt.Errorf("tạo VisitorService: %w", err)
	}
	return &VisitorHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ActivityVisitor, activitydto.VisitorCreateInput, activitydto.VisitorUpdateInput](service),
		VisitorService: service,
	}, nil
}

// HandleCheckIn xử lý POST /visitors/check-in/:code.
// Endpoint public cho khách tự check-in tại sự kiện bằng mã UUID được cấp.
func (h *VisitorHandler) HandleCheckIn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu mã check-in",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		visitor, err := h.VisitorService.CheckInByCode(c.Context(), code)
		h.HandleResponse(c, visitor, err)
		return nil
	})
}

// OneToOneHandler xử lý CRUD buổi gặp 1-1.
type OneToOneHandler struct {
	*basehdl.BaseHandler[models.ActivityOneToOne, activitydto.OneToOneCreateInput, activitydto.OneToOneUpdateInput]
	OneToOneService *activitysvc.OneToOneService
}

// NewOneToOneHandler tạo OneToOneHandler mới.
func NewOneToOneHandler() (*OneToOneHandler, error) {
	service, err := activitysvc.NewOneToOneService()
	if err != nil {
		return nil, fmt.Errorf("tạo OneToOneService: %w", err)
	}
	return &OneToOneHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.ActivityOneToOne, activitydto.OneToOneCreateInput, activitydto.OneToOneUpdateInput](service),
		OneToOneService: service,
	}, nil
}

// ClosedBusinessHandler xử lý CRUD giao dịch chốt thành công.
type ClosedBusinessHandler struct {
	*basehdl.BaseHandler[models.ActivityClosedBusiness, activitydto.ClosedBusinessCreateInput, activitydto.ClosedBusinessUpdateInput]
	ClosedBusinessService *activitysvc.ClosedBusinessService
}

// NewClosedBusinessHandler tạo ClosedBusinessHandler mới.
func NewClosedBusinessHandler() (*ClosedBusinessHandler, error) {
	service, err := activitysvc.NewClosedBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClosedBusinessService: %w", err)
	}
	return &ClosedBusinessHandler{
		BaseHandler:           basehdl.NewBaseHandler[models.ActivityClosedBusiness, activitydto.ClosedBusinessCreateInput, activitydto.ClosedBusinessUpdateInput](service),
		ClosedBusinessService: service,
	}, nil
}

// InsertOne ghi đè để parse Amount dạng chuỗi thập phân sang cents trước khi lưu.
func (h *ClosedBusinessHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input activitydto.ClosedBusinessCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cents, err := utility.ParseAmountCents(input.Amount)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Số tiền không hợp lệ: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		model.AmountCents = cents

		result, err := h.ClosedBusinessService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// UpdateById ghi đè để cho phép cập nhật số tiền bằng chuỗi thập phân.
func (h *ClosedBusinessHandler) UpdateById(c fiber.Ctx) error {
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

		var input activitydto.ClosedBusinessUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.Amount != "" {
			cents, err := utility.ParseAmountCents(input.Amount)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Số tiền không hợp lệ: %v", err),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			set["amountCents"] = cents
		}
		if input.Note != "" {
			set["note"] = input.Note
		}
		if input.OccurredAt != 0 {
			set["occurredAt"] = input.OccurredAt
		}
		if len(set) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Không có trường nào để cập nhật",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		result, err := h.ClosedBusinessService.UpdateById(c.Context(), utility.String2ObjectID(id), &basesvc.UpdateData{Set: set})
		h.HandleResponse(c, result, err)
		return nil
	})
}
