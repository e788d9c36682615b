// Package router đăng ký các route thuộc domain poll.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"biz_connect/internal/api/middleware"
	pollhdl "biz_connect/internal/api/poll/handler"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký các route khảo sát lên v1.
// Thành viên thường đọc và bình chọn; tạo, sửa, đóng, xóa dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pollHandler, err := pollhdl.NewPollHandler()
	if err != nil {
		return fmt.Errorf("tạo PollHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/polls", pollHandler, apirouter.ReadWriteConfig, middleware.AuthMiddleware, "Poll")

	authVote := middleware.AuthMiddleware("Poll.Vote")
	apirouter.RegisterRouteWithMiddleware(v1, "/polls", "POST", "/:id/vote", []fiber.Handler{authVote}, pollHandler.HandleVote)

	authRead := middleware.AuthMiddleware("Poll.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/polls", "GET", "/:id/results", []fiber.Handler{authRead}, pollHandler.HandleResults)

	authAdmin := middleware.AuthMiddleware("Poll.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/polls", "PUT", "/:id/close", []fiber.Handler{authAdmin}, pollHandler.HandleClose)

	return nil
}
