package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	eventmodels "biz_connect/internal/api/event/models"
	eventsvc "biz_connect/internal/api/event/service"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/metrics"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// ReminderWorker định kỳ gửi email cho thành viên đang hoạt động về các
// sự kiện đã duyệt trong 14 ngày tới. Chạy nền, mỗi ngày một lần.
type ReminderWorker struct {
	sender        *EmailSender
	eventService  *eventsvc.EventService
	memberService *membersvc.MemberService
	interval      time.Duration
}

// NewReminderWorker tạo ReminderWorker mới.
func NewReminderWorker(sender *EmailSender) (*ReminderWorker, error) {
	eventService, err := eventsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo EventService: %w", err)
	}
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	return &ReminderWorker{
		sender:        sender,
		eventService:  eventService,
		memberService: memberService,
		interval:      24 * time.Hour,
	}, nil
}

// Run chạy worker đến khi ctx bị hủy. Gửi một đợt ngay khi khởi động
// rồi lặp lại theo interval.
func (w *ReminderWorker) Run(ctx context.Context) {
	w.sendReminders(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Info("Reminder worker dừng")
			return
		case <-ticker.C:
			w.sendReminders(ctx)
		}
	}
}

// sendReminders gửi một đợt email nhắc lịch.
// Lỗi gửi từng email chỉ được log, không dừng cả đợt.
func (w *ReminderWorker) sendReminders(ctx context.Context) {
	events, err := w.eventService.Upcoming(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Không tải được danh sách sự kiện sắp tới")
		return
	}
	if len(events) == 0 {
		return
	}

	members, err := w.memberService.Find(ctx, bson.M{"isActive": true}, nil)
	if err != nil {
		logrus.WithError(err).Warn("Không tải được danh sách thành viên")
		return
	}

	subject := fmt.Sprintf("Nhắc lịch: %d sự kiện trong 14 ngày tới", len(events))
	body := buildReminderBody(events)

	sent := 0
	for _, member := range members {
		if member.Email == "" {
			continue
		}
		if err := w.sender.Send(member.Email, subject, body); err != nil {
			metrics.ReminderEmailsTotal.WithLabelValues("error").Inc()
			logrus.WithError(err).WithField("memberId", member.ID.Hex()).Warn("Gửi email nhắc lịch thất bại")
			continue
		}
		metrics.ReminderEmailsTotal.WithLabelValues("success").Inc()
		sent++
	}
	logrus.WithFields(logrus.Fields{"events": len(events), "sent": sent}).Info("Đã gửi email nhắc lịch sự kiện")
}

// buildReminderBody dựng nội dung HTML của email nhắc lịch.
func buildReminderBody(events []eventmodels.Event) string {
	var b strings.Builder
	b.WriteString("<h3>Sự kiện sắp tới của nhóm</h3><ul>")
	for _, event := range events {
		b.WriteString("<li><strong>")
		b.WriteString(event.Name)
		b.WriteString("</strong> - ")
		b.WriteString(event.Date)
		if event.StartTime != "" {
			b.WriteString(" ")
			b.WriteString(event.StartTime)
		}
		if event.Location != "" {
			b.WriteString(" tại ")
			b.WriteString(event.Location)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
