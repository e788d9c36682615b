// Package router đăng ký các route thuộc domain member.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	memberhdl "biz_connect/internal/api/member/handler"
	"biz_connect/internal/api/middleware"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký tất cả route thành viên lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	memberHandler, err := memberhdl.NewMemberHandler()
	if err != nil {
		return fmt.Errorf("tạo MemberHandler: %w", err)
	}

	// CRUD chuẩn: quản lý thành viên yêu cầu permission Member.* (ghi chỉ dành cho quản trị viên)
	r.RegisterCRUDRoutes(v1, "/members", memberHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Member")

	// PUT /members/change-password — thành viên tự đổi mật khẩu, chỉ cần đăng nhập
	authOnly := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/members", "PUT", "/change-password", []fiber.Handler{authOnly}, memberHandler.HandleChangePassword)

	// PUT /members/:id/set-active — kích hoạt / ngưng hoạt động, yêu cầu quản trị viên
	authAdmin := middleware.AuthMiddleware("Member.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/members", "PUT", "/:id/set-active", []fiber.Handler{authAdmin}, memberHandler.HandleSetActive)

	return nil
}
