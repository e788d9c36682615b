// Package eventhdl - Handler sự kiện.
package eventhdl

import (
	"fmt"

	basehdl "biz_connect/internal/api/base/handler"
	eventdto "biz_connect/internal/api/event/dto"
	eventmodels "biz_connect/internal/api/event/models"
	eventsvc "biz_connect/internal/api/event/service"
	"biz_connect/internal/common"
	"biz_connect/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventHandler xử lý CRUD sự kiện cùng các thao tác duyệt, hủy và
// danh sách sắp tới.
type EventHandler struct {
	*basehdl.BaseHandler[eventmodels.Event, eventdto.EventCreateInput, eventdto.EventUpdateInput]
	EventService *eventsvc.EventService
}

// NewEventHandler tạo EventHandler mới.
func NewEventHandler() (*EventHandler, error) {
	eventService, err := eventsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo EventService: %w", err)
	}
	return &EventHandler{
		BaseHandler:  basehdl.NewBaseHandler[eventmodels.Event, eventdto.EventCreateInput, eventdto.EventUpdateInput](eventService),
		EventService: eventService,
	}, nil
}

// HandleApprove xử lý PUT /events/:id/approve (quản trị viên duyệt sự kiện).
func (h *EventHandler) HandleApprove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.requireObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		event, err := h.EventService.Approve(c.Context(), id)
		h.HandleResponse(c, event, err)
		return nil
	})
}

// HandleCancel xử lý PUT /events/:id/cancel (quản trị viên hủy sự kiện).
func (h *EventHandler) HandleCancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.requireObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		event, err := h.EventService.Cancel(c.Context(), id)
		h.HandleResponse(c, event, err)
		return nil
	})
}

// HandleUpcoming xử lý GET /events/upcoming (sự kiện đã duyệt trong 14 ngày tới).
func (h *EventHandler) HandleUpcoming(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		events, err := h.EventService.Upcoming(c.Context())
		h.HandleResponse(c, events, err)
		return nil
	})
}

// requireObjectID đọc và kiểm tra param :id
func (h *EventHandler) requireObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
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
