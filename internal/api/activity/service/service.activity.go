// Package activitysvc - service cho các hoạt động của thành viên.
package activitysvc

import (
	"context"
	"fmt"

	models "biz_connect/internal/api/activity/models"
	basesvc "biz_connect/internal/api/base/service"
	"biz_connect/internal/common"
	"biz_connect/internal/global"
	"biz_connect/internal/utility"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ReferralService xử lý nghiệp vụ referral
type ReferralService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityReferral]
}

// NewReferralService tạo mới ReferralService
func NewReferralService() (*ReferralService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityReferrals)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_referrals collection: %v", common.ErrNotFound)
	}
	return &ReferralService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityReferral](collection),
	}, nil
}

// InsertOne ghi nhận referral. Người giới thiệu và người nhận phải khác nhau.
func (s *ReferralService) InsertOne(ctx context.Context, data models.ActivityReferral) (models.ActivityReferral, error) {
	if data.MemberID == data.ReceiverMemberID {
		return data, common.NewError(
			common.ErrCodeBusinessOperation,
			"Người giới thiệu và người nhận referral phải là hai thành viên khác nhau",
			common.StatusBadRequest,
			nil,
		)
	}
	if data.OccurredAt == 0 {
		data.OccurredAt = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// VisitorService xử lý nghiệp vụ khách mời
type VisitorService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityVisitor]
}

// NewVisitorService tạo mới VisitorService
func NewVisitorService() (*VisitorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityVisitors)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_visitors collection: %v", common.ErrNotFound)
	}
	return &VisitorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityVisitor](collection),
	}, nil
}

// InsertOne ghi nhận khách mời và sinh mã check-in UUID cho khách
func (s *VisitorService) InsertOne(ctx context.Context, data models.ActivityVisitor) (models.ActivityVisitor, error) {
	if data.CheckInCode == "" {
		data.CheckInCode = uuid.NewString()
	}
	if data.OccurredAt == 0 {
		data.OccurredAt = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// CheckInByCode đánh dấu khách đã có mặt theo mã check-in.
// Gọi từ endpoint public tại sự kiện, không yêu cầu đăng nhập.
func (s *VisitorService) CheckInByCode(ctx context.Context, code string) (models.ActivityVisitor, error) {
	visitor, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"checkInCode": code}, nil)
	if err != nil {
		return visitor, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"checkedInAt": utility.CurrentTimeInMilli(),
			"didNotShow":  false,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, visitor.ID, updateData)
}

// OneToOneService xử lý nghiệp vụ gặp gỡ 1-1
type OneToOneService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityOneToOne]
}

// NewOneToOneService tạo mới OneToOneService
func NewOneToOneService() (*OneToOneService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityOneToOnes)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_one_to_ones collection: %v", common.ErrNotFound)
	}
	return &OneToOneService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityOneToOne](collection),
	}, nil
}

// InsertOne ghi nhận buổi gặp 1-1. Hai bên tham gia phải khác nhau.
func (s *OneToOneService) InsertOne(ctx context.Context, data models.ActivityOneToOne) (models.ActivityOneToOne, error) {
	if data.MemberAID == data.MemberBID {
		return data, common.NewError(
			common.ErrCodeBusinessOperation,
			"Buổi gặp 1-1 phải có hai thành viên khác nhau",
			common.StatusBadRequest,
			nil,
		)
	}
	if data.OccurredAt == 0 {
		data.OccurredAt = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// ClosedBusinessService xử lý nghiệp vụ giao dịch chốt thành công
type ClosedBusinessService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityClosedBusiness]
}

// NewClosedBusinessService tạo mới ClosedBusinessService
func NewClosedBusinessService() (*ClosedBusinessService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityClosedBusiness)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_closed_business collection: %v", common.ErrNotFound)
	}
	return &ClosedBusinessService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityClosedBusiness](collection),
	}, nil
}

// InsertOne ghi nhận giao dịch chốt thành công. Số tiền phải dương.
func (s *ClosedBusinessService) InsertOne(ctx context.Context, data models.ActivityClosedBusiness) (models.ActivityClosedBusiness, error) {
	if data.AmountCents <= 0 {
		return data, common.NewError(
			common.ErrCodeBusinessOperation,
			"Số tiền giao dịch phải lớn hơn 0",
			common.StatusBadRequest,
			nil,
		)
	}
	if data.OccurredAt == 0 {
		data.OccurredAt = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}
