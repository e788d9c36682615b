// Package reporthdl - Handler báo cáo.
package reporthdl

import (
	"fmt"
	"time"

	basehdl "biz_connect/internal/api/base/handler"
	reportdto "biz_connect/internal/api/report/dto"
	"biz_connect/internal/api/report/engine"
	reportsvc "biz_connect/internal/api/report/service"
	"biz_connect/internal/common"
	"biz_connect/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các endpoint báo cáo. Không có collection riêng nên
// không embed BaseHandler; dùng SafeHandlerWrapper và HandleResponse chung.
type ReportHandler struct {
	ReportService *reportsvc.ReportService
	now           engine.Clock
}

// NewReportHandler tạo ReportHandler mới.
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReportService: %w", err)
	}
	return &ReportHandler{
		ReportService: reportService,
		now:           time.Now,
	}, nil
}

// HandleDashboard xử lý GET /reports/dashboard?start=&end=.
// Bỏ trống khoảng thời gian thì lấy 30 ngày gần nhất.
func (h *ReportHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var query reportdto.DashboardQuery
		w, err := h.parseWindow(c, &query)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.Dashboard(c.Context(), w)
		basehdl.HandleResponse(c, report, err)
		return nil
	})
}

// HandleWeekly xử lý GET /reports/weekly: báo cáo từ 00:00 thứ Ba gần nhất
// đến hiện tại kèm người dẫn đầu từng hạng mục.
func (h *ReportHandler) HandleWeekly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		report, err := h.ReportService.Weekly(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, reportdto.WeeklyReport{
			Report: report,
			Top:    topPerformers(report),
		}, nil)
		return nil
	})
}

// HandleChart xử lý GET /reports/chart?start=&end=&granularity=.
func (h *ReportHandler) HandleChart(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var query reportdto.ChartQuery
		if err := c.Bind().Query(&query); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&query); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Query không hợp lệ: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		w, err := h.windowFromDates(query.Start, query.End)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		buckets, err := h.ReportService.Chart(c.Context(), w, engine.Granularity(query.Granularity))
		basehdl.HandleResponse(c, buckets, err)
		return nil
	})
}

// HandleTop xử lý GET /reports/top?start=&end=: chỉ trả người dẫn đầu.
func (h *ReportHandler) HandleTop(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var query reportdto.DashboardQuery
		w, err := h.parseWindow(c, &query)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.Dashboard(c.Context(), w)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, topPerformers(report), nil)
		return nil
	})
}

// HandleRefresh xử lý POST /reports/refresh: reset snapshot cache để lần
// đọc kế tiếp tải dữ liệu mới, bỏ qua cooldown.
func (h *ReportHandler) HandleRefresh(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		h.ReportService.RefreshSnapshot()
		basehdl.HandleResponse(c, fiber.Map{"refreshed": true}, nil)
		return nil
	})
}

// parseWindow bind query dashboard rồi dựng cửa sổ thời gian.
func (h *ReportHandler) parseWindow(c fiber.Ctx, query *reportdto.DashboardQuery) (engine.Window, error) {
	if err := c.Bind().Query(query); err != nil {
		return engine.Window{}, common.ErrInvalidFormat
	}
	if err := global.Validate.Struct(query); err != nil {
		return engine.Window{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Query không hợp lệ: %v", err),
			common.StatusBadRequest,
			nil,
		)
	}

	now := h.now()
	if query.Start == "" && query.End == "" {
		return engine.Window{Start: engine.StartOfDay(engine.AddDays(now, -30)), End: now}, nil
	}
	return h.windowFromDates(query.Start, query.End)
}

// windowFromDates dựng cửa sổ [đầu ngày start, cuối ngày end] từ chuỗi ngày.
func (h *ReportHandler) windowFromDates(startStr, endStr string) (engine.Window, error) {
	now := h.now()

	start := engine.StartOfDay(engine.AddDays(now, -30))
	if startStr != "" {
		parsed, err := engine.ParseEventDate(startStr)
		if err != nil {
			return engine.Window{}, common.ErrInvalidFormat
		}
		start = engine.StartOfDay(parsed)
	}

	end := now
	if endStr != "" {
		parsed, err := engine.ParseEventDate(endStr)
		if err != nil {
			return engine.Window{}, common.ErrInvalidFormat
		}
		end = engine.StartOfDay(parsed).AddDate(0, 0, 1).Add(-time.Millisecond)
	}

	return engine.NewWindow(start, end)
}

// topPerformers chọn người dẫn đầu từng hạng mục từ một báo cáo.
func topPerformers(report engine.Report) reportdto.TopPerformers {
	return reportdto.TopPerformers{
		Referrals:      engine.TopPerformer(report.PerMember, engine.MetricReferrals),
		Visitors:       engine.TopPerformer(report.PerMember, engine.MetricVisitors),
		OneToOnes:      engine.TopPerformer(report.PerMember, engine.MetricOneToOnes),
		ClosedBusiness: engine.TopPerformer(report.PerMember, engine.MetricClosedBusiness),
	}
}
