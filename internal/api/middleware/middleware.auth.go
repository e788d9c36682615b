package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	membermodels "biz_connect/internal/api/member/models"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/common"
	"biz_connect/internal/global"
	"biz_connect/internal/logger"
	"biz_connect/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền thành viên
type AuthManager struct {
	MemberCRUD *membersvc.MemberService
	Cache      *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create member service: %v", err)
	}
	newManager.MemberCRUD = memberService

	// Cache token → member với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// memberPermissions là các permission mọi thành viên đăng nhập đều có.
// Permission ngoài danh sách này yêu cầu IsAdmin (quản lý thành viên, duyệt sự kiện, tạo poll, ...).
var memberPermissions = map[string]bool{
	"Member.Read":     true,
	"Activity.Insert": true,
	"Activity.Read":   true,
	"Event.Read":      true,
	"Poll.Read":       true,
	"Poll.Vote":       true,
	"Report.Read":     true,
}

// findMemberByToken tìm thành viên theo token, có cache để giảm số lần query database
func (am *AuthManager) findMemberByToken(token string) (membermodels.Member, error) {
	cacheKey := "member_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(membermodels.Member), nil
	}

	member, err := am.MemberCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
	if err != nil {
		return member, err
	}

	am.Cache.Set(cacheKey, member)
	return member, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(requirePermission string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Validate chữ ký và hạn của JWT trước khi query database
		parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil || !parsedToken.Valid {
			if err != nil && strings.Contains(err.Error(), "expired") {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm thành viên đang giữ token này (token được cập nhật mỗi lần login,
		// logout xóa token nên token cũ không dùng lại được)
		member, err := authManager.findMemberByToken(token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra thành viên còn hoạt động không
		if !member.IsActive {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản thành viên đã ngưng hoạt động",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin thành viên vào context
		c.Locals("member_id", member.ID.Hex())
		c.Locals("member", member)

		// Không yêu cầu permission cụ thể: chỉ cần đăng nhập
		if requirePermission == "" {
			return c.Next()
		}

		// Quản trị viên có toàn bộ permission
		if member.IsAdmin {
			return c.Next()
		}

		// Thành viên thường chỉ có các permission trong memberPermissions
		if !memberPermissions[requirePermission] {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"member_id":           member.ID.Hex(),
				"member_email":        member.Email,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("[AUTH] Member does not have required permission")
			HandleErrorResponse(c, common.ErrNotAdministrator)
			return nil
		}

		return c.Next()
	}
}
