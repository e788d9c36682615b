// Package router đăng ký các route thuộc domain event.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	eventhdl "biz_connect/internal/api/event/handler"
	"biz_connect/internal/api/middleware"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký các route sự kiện lên v1.
// Thành viên thường chỉ đọc; tạo, sửa, duyệt và hủy dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	eventHandler, err := eventhdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("tạo EventHandler: %w", err)
	}

	// Đăng ký trước CRUD để /events/upcoming không bị nuốt bởi /events/find-by-id/:id
	authRead := middleware.AuthMiddleware("Event.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "GET", "/upcoming", []fiber.Handler{authRead}, eventHandler.HandleUpcoming)

	r.RegisterCRUDRoutes(v1, "/events", eventHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Event")

	authAdmin := middleware.AuthMiddleware("Event.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "PUT", "/:id/approve", []fiber.Handler{authAdmin}, eventHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "PUT", "/:id/cancel", []fiber.Handler{authAdmin}, eventHandler.HandleCancel)

	return nil
}
