// Package eventsvc - service cho domain event.
package eventsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "biz_connect/internal/api/base/service"
	models "biz_connect/internal/api/event/models"
	"biz_connect/internal/api/report/engine"
	"biz_connect/internal/common"
	"biz_connect/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventService xử lý nghiệp vụ sự kiện.
// now được inject để test danh sách sắp tới với thời điểm cố định.
type EventService struct {
	*basesvc.BaseServiceMongoImpl[models.Event]
	now engine.Clock
}

// NewEventService tạo mới EventService
func NewEventService() (*EventService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Events)
	if !exist {
		return nil, fmt.Errorf("failed to get events collection: %v", common.ErrNotFound)
	}
	return &EventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Event](collection),
		now:                  time.Now,
	}, nil
}

// WithClock thay nguồn thời gian, dùng cho test.
func (s *EventService) WithClock(now engine.Clock) *EventService {
	s.now = now
	return s
}

// Approve duyệt sự kiện để hiện trong danh sách sắp tới.
// Sự kiện đã hủy không duyệt lại được.
func (s *EventService) Approve(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	event, err := s.FindOneById(ctx, id)
	if err != nil {
		return event, err
	}
	if event.Cancelled {
		return event, common.NewError(
			common.ErrCodeBusinessOperation,
			"Sự kiện đã hủy, không thể duyệt",
			common.StatusBadRequest,
			nil,
		)
	}

	logrus.WithField("eventId", id.Hex()).Info("Duyệt sự kiện")
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"approved": true},
	})
}

// Cancel hủy sự kiện. Document được giữ lại với cờ cancelled thay vì xóa.
func (s *EventService) Cancel(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	logrus.WithField("eventId", id.Hex()).Info("Hủy sự kiện")
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"cancelled": true},
	})
}

// Upcoming trả về các sự kiện đã duyệt, chưa hủy, diễn ra trong 14 ngày tới.
// So sánh theo thành phần ngày nên sự kiện hôm nay vẫn hiện dù giờ đã qua.
// Sự kiện có ngày hỏng bị loại lặng lẽ thay vì làm hỏng cả danh sách.
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	events, err := s.Find(ctx, bson.M{"approved": true, "cancelled": false}, opts)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		if engine.IsWithinNextTwoWeeks(event.Date, now) {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}
