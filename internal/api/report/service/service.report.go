// Package reportsvc - service cho domain report.
//
// Tầng này là phần duy nhất chạm I/O của hệ thống báo cáo: tải snapshot
// dữ liệu từ MongoDB qua fetchpolicy rồi giao toàn bộ phần tính toán cho
// engine thuần. Snapshot được cache và tự vô hiệu khi dữ liệu hoạt động
// hoặc thành viên thay đổi.
package reportsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	activitysvc "biz_connect/internal/api/activity/service"
	"biz_connect/internal/api/events"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/api/report/engine"
	"biz_connect/internal/common"
	"biz_connect/internal/fetchpolicy"
	"biz_connect/internal/global"
	"biz_connect/internal/metrics"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// ReportService dựng báo cáo hoạt động từ snapshot dữ liệu.
type ReportService struct {
	memberService         *membersvc.MemberService
	referralService       *activitysvc.ReferralService
	visitorService        *activitysvc.VisitorService
	oneToOneService       *activitysvc.OneToOneService
	closedBusinessService *activitysvc.ClosedBusinessService

	snapshot *fetchpolicy.Policy[engine.Snapshot]
	now      engine.Clock
}

// NewReportService tạo mới ReportService và đăng ký invalidation:
// mọi thay đổi CRUD trên thành viên hoặc hoạt động đều reset snapshot cache.
// Gọi đúng một lần khi khởi động (từ router).
func NewReportService() (*ReportService, error) {
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	referralService, err := activitysvc.NewReferralService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReferralService: %w", err)
	}
	visitorService, err := activitysvc.NewVisitorService()
	if err != nil {
		return nil, fmt.Errorf("tạo VisitorService: %w", err)
	}
	oneToOneService, err := activitysvc.NewOneToOneService()
	if err != nil {
		return nil, fmt.Errorf("tạo OneToOneService: %w", err)
	}
	closedBusinessService, err := activitysvc.NewClosedBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClosedBusinessService: %w", err)
	}

	s := &ReportService{
		memberService:         memberService,
		referralService:       referralService,
		visitorService:        visitorService,
		oneToOneService:       oneToOneService,
		closedBusinessService: closedBusinessService,
		snapshot:              fetchpolicy.New[engine.Snapshot]("report_snapshot"),
		now:                   time.Now,
	}

	watched := map[string]bool{
		global.MongoDB_ColNames.Members:                true,
		global.MongoDB_ColNames.ActivityReferrals:      true,
		global.MongoDB_ColNames.ActivityVisitors:       true,
		global.MongoDB_ColNames.ActivityOneToOnes:      true,
		global.MongoDB_ColNames.ActivityClosedBusiness: true,
	}
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if watched[e.CollectionName] {
			s.snapshot.Reset()
		}
	})

	return s, nil
}

// WithClock thay nguồn thời gian, dùng cho test.
func (s *ReportService) WithClock(now engine.Clock) *ReportService {
	s.now = now
	return s
}

// loadSnapshot tải toàn bộ dữ liệu cần cho báo cáo từ MongoDB.
func (s *ReportService) loadSnapshot(ctx context.Context) (engine.Snapshot, error) {
	var snap engine.Snapshot
	var err error

	if snap.Members, err = s.memberService.Find(ctx, bson.M{}, nil); err != nil {
		return snap, fmt.Errorf("tải danh sách thành viên: %w", err)
	}
	if snap.Referrals, err = s.referralService.Find(ctx, bson.M{}, nil); err != nil {
		return snap, fmt.Errorf("tải referrals: %w", err)
	}
	if snap.Visitors, err = s.visitorService.Find(ctx, bson.M{}, nil); err != nil {
		return snap, fmt.Errorf("tải visitors: %w", err)
	}
	if snap.OneToOnes, err = s.oneToOneService.Find(ctx, bson.M{}, nil); err != nil {
		return snap, fmt.Errorf("tải one-to-ones: %w", err)
	}
	if snap.ClosedBusiness, err = s.closedBusinessService.Find(ctx, bson.M{}, nil); err != nil {
		return snap, fmt.Errorf("tải closed business: %w", err)
	}
	return snap, nil
}

// Snapshot trả về snapshot dữ liệu hiện hành theo fetchpolicy.
// Trong cooldown hoặc khi đang có lần tải chạy dở, snapshot cache gần nhất
// được dùng lại thay vì chạm DB.
func (s *ReportService) Snapshot(ctx context.Context) (engine.Snapshot, error) {
	snap, err := s.snapshot.Execute(ctx, s.loadSnapshot)
	if err == nil {
		metrics.SnapshotFetchesTotal.WithLabelValues("success").Inc()
		return snap, nil
	}

	switch {
	case errors.Is(err, fetchpolicy.ErrCooldown):
		metrics.SnapshotFetchesTotal.WithLabelValues("cooldown").Inc()
	case errors.Is(err, fetchpolicy.ErrInFlight):
		metrics.SnapshotFetchesTotal.WithLabelValues("in_flight").Inc()
	case errors.Is(err, fetchpolicy.ErrExhausted):
		metrics.SnapshotFetchesTotal.WithLabelValues("exhausted").Inc()
	default:
		metrics.SnapshotFetchesTotal.WithLabelValues("error").Inc()
		metrics.SnapshotFetchRetries.Inc()
	}

	// Cooldown và in-flight là tín hiệu skip: cache gần nhất vẫn dùng được
	if cached, ok := s.snapshot.Last(); ok &&
		(errors.Is(err, fetchpolicy.ErrCooldown) || errors.Is(err, fetchpolicy.ErrInFlight)) {
		return cached, nil
	}

	logrus.WithError(err).Warn("Không tải được snapshot báo cáo")
	return snap, common.NewError(
		common.ErrCodeReportFetch,
		"Không tải được dữ liệu báo cáo, vui lòng thử lại sau",
		common.StatusServiceUnavailable,
		nil,
	)
}

// RefreshSnapshot xóa cache và bộ đếm lỗi của snapshot.
// Dùng cho nút refresh thủ công, bỏ qua cooldown hiện hành. Idempotent.
func (s *ReportService) RefreshSnapshot() {
	s.snapshot.Reset()
	logrus.Info("Snapshot báo cáo đã được reset thủ công")
}

// Dashboard tổng hợp báo cáo cho khoảng [start, end].
func (s *ReportService) Dashboard(ctx context.Context, w engine.Window) (engine.Report, error) {
	if err := w.Validate(); err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("dashboard", "error").Inc()
		return engine.Report{}, err
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("dashboard", "error").Inc()
		return engine.Report{}, err
	}

	report, err := engine.Aggregate(snap, w)
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("dashboard", "error").Inc()
		return engine.Report{}, err
	}
	metrics.ReportBuildsTotal.WithLabelValues("dashboard", "success").Inc()
	return report, nil
}

// Weekly tổng hợp báo cáo tuần: từ 00:00 thứ Ba gần nhất đến hiện tại,
// kèm người dẫn đầu từng hạng mục.
func (s *ReportService) Weekly(ctx context.Context) (engine.Report, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("weekly", "error").Inc()
		return engine.Report{}, err
	}

	report, err := engine.Aggregate(snap, engine.WeeklyWindow(s.now()))
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("weekly", "error").Inc()
		return engine.Report{}, err
	}
	metrics.ReportBuildsTotal.WithLabelValues("weekly", "success").Inc()
	return report, nil
}

// Chart chia khoảng [w.Start, w.End] thành bucket và tổng hợp từng bucket.
// granularity rỗng thì chọn tự động theo ngưỡng 14/60 ngày.
func (s *ReportService) Chart(ctx context.Context, w engine.Window, granularity engine.Granularity) ([]engine.Bucket, error) {
	if err := w.Validate(); err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("chart", "error").Inc()
		return nil, err
	}
	if granularity == "" {
		granularity = engine.GranularityFor(w.Start, w.End)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("chart", "error").Inc()
		return nil, err
	}

	buckets, err := engine.Bucketize(snap, w, granularity)
	if err != nil {
		metrics.ReportBuildsTotal.WithLabelValues("chart", "error").Inc()
		return nil, err
	}
	metrics.ReportBuildsTotal.WithLabelValues("chart", "success").Inc()
	return buckets, nil
}
