// Package router đăng ký các route thuộc domain auth: login, logout, profile.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "biz_connect/internal/api/auth/handler"
	"biz_connect/internal/api/middleware"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký tất cả route xác thực lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("tạo AuthHandler: %w", err)
	}

	// POST /auth/login — public, không cần token
	v1.Post("/auth/login", authHandler.HandleLogin)

	// Các route còn lại chỉ cần đăng nhập
	authOnly := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnly}, authHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authOnly}, authHandler.HandleProfile)

	return nil
}
