// Package authsvc - service xác thực thành viên.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "biz_connect/internal/api/auth/dto"
	membermodels "biz_connect/internal/api/member/models"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/common"
	"biz_connect/internal/global"
	"biz_connect/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService xử lý đăng nhập / đăng xuất của thành viên
type AuthService struct {
	memberService *membersvc.MemberService
}

// NewAuthService tạo mới AuthService
func NewAuthService() (*AuthService, error) {
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create member service: %v", err)
	}
	return &AuthService{memberService: memberService}, nil
}

// Login xác thực email + mật khẩu, cấp JWT mới và lưu vào member.
// Token cũ bị thay thế: mỗi thành viên chỉ có một phiên đăng nhập hợp lệ.
func (s *AuthService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResponse, error) {
	member, err := s.memberService.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không tiết lộ email có tồn tại hay không
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utility.ComparePassword(member.Password, input.Password) {
		logrus.WithFields(logrus.Fields{"email": input.Email}).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	if !member.IsActive {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản thành viên đã ngưng hoạt động",
			common.StatusForbidden,
			nil,
		)
	}

	ttl := time.Duration(global.ServerConfig.JwtExpiryHours) * time.Hour
	token, err := utility.CreateToken(global.ServerConfig.JwtSecret, member.ID.Hex(), ttl)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi tạo token", common.StatusInternalServerError, err)
	}

	updatedMember, err := s.memberService.SetToken(ctx, member.ID, token)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"member_id": updatedMember.ID.Hex(),
		"email":     updatedMember.Email,
	}).Info("Login: Đăng nhập thành công")

	return &authdto.LoginResponse{Token: token, Member: updatedMember}, nil
}

// Logout đăng xuất thành viên (xóa token hiện tại)
func (s *AuthService) Logout(ctx context.Context, memberID primitive.ObjectID) error {
	return s.memberService.ClearToken(ctx, memberID)
}

// Profile trả về thông tin thành viên đang đăng nhập
func (s *AuthService) Profile(ctx context.Context, memberID primitive.ObjectID) (membermodels.Member, error) {
	return s.memberService.FindOneById(ctx, memberID)
}
