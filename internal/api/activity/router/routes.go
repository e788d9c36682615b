// Package router đăng ký các route thuộc domain activity.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	activityhdl "biz_connect/internal/api/activity/handler"
	"biz_connect/internal/api/middleware"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký các route hoạt động lên v1.
// Cả bốn loại hoạt động dùng chung permission prefix Activity:
// thành viên thường được phép ghi nhận (Insert) và xem (Read),
// cập nhật và xóa dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	referralHandler, err := activityhdl.NewReferralHandler()
	if err != nil {
		return fmt.Errorf("tạo ReferralHandler: %w", err)
	}
	visitorHandler, err := activityhdl.NewVisitorHandler()
	if err != nil {
		return fmt.Errorf("tạo VisitorHandler: %w", err)
	}
	oneToOneHandler, err := activityhdl.NewOneToOneHandler()
	if err != nil {
		return fmt.Errorf("tạo OneToOneHandler: %w", err)
	}
	closedBusinessHandler, err := activityhdl.NewClosedBusinessHandler()
	if err != nil {
		return fmt.Errorf("tạo ClosedBusinessHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/activities/referrals", referralHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Activity")
	r.RegisterCRUDRoutes(v1, "/activities/visitors", visitorHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Activity")
	r.RegisterCRUDRoutes(v1, "/activities/one-to-ones", oneToOneHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Activity")
	r.RegisterCRUDRoutes(v1, "/activities/closed-business", closedBusinessHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Activity")

	// POST /activities/visitors/check-in/:code — public, khách tự check-in bằng mã UUID
	v1.Post("/activities/visitors/check-in/:code", visitorHandler.HandleCheckIn)

	return nil
}
