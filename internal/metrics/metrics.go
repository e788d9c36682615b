// Package metrics expose các chỉ số Prometheus của ứng dụng trên một cổng riêng,
// tách khỏi API chính để không ảnh hưởng routing và middleware của Fiber.
package metrics

import (
	"net/http"
	"time"

	"biz_connect/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal đếm số request HTTP theo method, path và status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biz_connect",
		Name:      "http_requests_total",
		Help:      "Tổng số HTTP request đã xử lý",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration đo thời gian xử lý request
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "biz_connect",
		Name:      "http_request_duration_seconds",
		Help:      "Thời gian xử lý HTTP request",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ReportBuildsTotal đếm số lần tổng hợp báo cáo theo loại và kết quả
	ReportBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biz_connect",
		Name:      "report_builds_total",
		Help:      "Tổng số lần tổng hợp báo cáo",
	}, []string{"report", "result"})

	// SnapshotFetchesTotal đếm số lần tải snapshot dữ liệu theo kết quả
	// (success, error, cooldown, in_flight, exhausted)
	SnapshotFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biz_connect",
		Name:      "snapshot_fetches_total",
		Help:      "Tổng số lần tải snapshot dữ liệu hoạt động",
	}, []string{"result"})

	// SnapshotFetchRetries đếm số lần retry khi tải snapshot thất bại
	SnapshotFetchRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "biz_connect",
		Name:      "snapshot_fetch_retries_total",
		Help:      "Tổng số lần retry tải snapshot",
	})

	// ReminderEmailsTotal đếm số email nhắc lịch sự kiện đã gửi theo kết quả
	ReminderEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biz_connect",
		Name:      "reminder_emails_total",
		Help:      "Tổng số email nhắc lịch sự kiện",
	}, []string{"result"})
)

// Serve khởi động HTTP server phục vụ /metrics trên địa chỉ riêng.
// Chạy trong goroutine, lỗi chỉ được log vì metrics không phải critical path.
func Serve(address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log := logger.GetAppLogger()
		log.Infof("Metrics server listening on %s", address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()
}
