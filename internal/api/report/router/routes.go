// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"biz_connect/internal/api/middleware"
	reporthdl "biz_connect/internal/api/report/handler"
	apirouter "biz_connect/internal/api/router"
)

// Register đăng ký các route báo cáo lên v1.
// Mọi thành viên xem được báo cáo; refresh snapshot dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("tạo ReportHandler: %w", err)
	}

	authRead := middleware.AuthMiddleware("Report.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/dashboard", []fiber.Handler{authRead}, reportHandler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/weekly", []fiber.Handler{authRead}, reportHandler.HandleWeekly)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/chart", []fiber.Handler{authRead}, reportHandler.HandleChart)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/top", []fiber.Handler{authRead}, reportHandler.HandleTop)

	authAdmin := middleware.AuthMiddleware("Report.Refresh")
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "POST", "/refresh", []fiber.Handler{authAdmin}, reportHandler.HandleRefresh)

	return nil
}
