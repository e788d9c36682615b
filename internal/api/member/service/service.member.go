// Package membersvc - service thành viên (Member).
package membersvc

import (
	"context"
	"fmt"

	basesvc "biz_connect/internal/api/base/service"
	models "biz_connect/internal/api/member/models"
	"biz_connect/internal/common"
	"biz_connect/internal/global"
	"biz_connect/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberService là cấu trúc chứa các phương thức liên quan đến thành viên
type MemberService struct {
	*basesvc.BaseServiceMongoImpl[models.Member]
}

// NewMemberService tạo mới MemberService
func NewMemberService() (*MemberService, error) {
	memberCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
	if !exist {
		return nil, fmt.Errorf("failed to get members collection: %v", common.ErrNotFound)
	}

	return &MemberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Member](memberCollection),
	}, nil
}

// InsertOne tạo thành viên mới. Mật khẩu plaintext từ input được hash bcrypt trước khi lưu.
// Thành viên mới mặc định ở trạng thái hoạt động.
func (s *MemberService) InsertOne(ctx context.Context, data models.Member) (models.Member, error) {
	if data.Password != "" {
		hashed, err := utility.HashPassword(data.Password)
		if err != nil {
			return data, common.NewError(common.ErrCodeInternalServer, "Lỗi xử lý mật khẩu", common.StatusInternalServerError, err)
		}
		data.Password = hashed
	}
	data.IsActive = true
	if data.JoinedAt == 0 {
		data.JoinedAt = utility.CurrentTimeInMilli()
	}

	member, err := s.BaseServiceMongoImpl.InsertOne(ctx, data)
	if err != nil {
		return member, err
	}

	logrus.WithFields(logrus.Fields{
		"member_id": member.ID.Hex(),
		"email":     member.Email,
	}).Info("Đã tạo thành viên mới")
	return member, nil
}

// DeleteById xóa thành viên theo ID.
// Thành viên đã có hoạt động ghi nhận hoặc đã bình chọn không được xóa
// để giữ toàn vẹn số liệu báo cáo (dùng SetActive để ngưng hoạt động thay thế).
func (s *MemberService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteMember(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// ChangePassword đổi mật khẩu của thành viên sau khi xác nhận mật khẩu cũ
func (s *MemberService) ChangePassword(ctx context.Context, memberID primitive.ObjectID, oldPassword, newPassword string) error {
	member, err := s.BaseServiceMongoImpl.FindOneById(ctx, memberID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(member.Password, oldPassword) {
		return common.ErrInvalidCredentials
	}

	hashed, err := utility.HashPassword(newPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Lỗi xử lý mật khẩu", common.StatusInternalServerError, err)
	}

	// Đổi mật khẩu đồng thời thu hồi token hiện tại, buộc đăng nhập lại
	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": hashed},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, memberID, updateData)
	return err
}

// SetActive kích hoạt hoặc ngưng hoạt động thành viên.
// Khi ngưng hoạt động, token hiện tại bị thu hồi.
func (s *MemberService) SetActive(ctx context.Context, memberID primitive.ObjectID, isActive bool) (models.Member, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isActive": isActive},
	}
	if !isActive {
		updateData.Unset = map[string]interface{}{"token": ""}
	}
	member, err := s.BaseServiceMongoImpl.UpdateById(ctx, memberID, updateData)
	if err != nil {
		return member, err
	}

	logrus.WithFields(logrus.Fields{
		"member_id": member.ID.Hex(),
		"is_active": isActive,
	}).Info("Đã thay đổi trạng thái hoạt động của thành viên")
	return member, nil
}

// SetToken lưu token mới cho thành viên (gọi khi đăng nhập thành công)
func (s *MemberService) SetToken(ctx context.Context, memberID primitive.ObjectID, token string) (models.Member, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, memberID, updateData)
}

// ClearToken xóa token của thành viên (gọi khi đăng xuất)
func (s *MemberService) ClearToken(ctx context.Context, memberID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, memberID, updateData)
	return err
}
