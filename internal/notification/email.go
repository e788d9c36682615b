// Package notification gửi email nhắc lịch sự kiện sắp tới cho thành viên.
package notification

import (
	"fmt"

	"biz_connect/config"

	"gopkg.in/gomail.v2"
)

// EmailSender gửi email qua SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailSender tạo EmailSender từ cấu hình SMTP.
// Trả về lỗi khi thiếu host hoặc địa chỉ gửi để phát hiện cấu hình sai từ lúc khởi động.
func NewEmailSender(cfg *config.Configuration) (*EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("thiếu cấu hình SMTP_HOST")
	}
	if cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("thiếu cấu hình SMTP_FROM")
	}
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}, nil
}

// Send gửi một email HTML tới một người nhận.
func (s *EmailSender) Send(to, subject, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("gửi email tới %s: %w", to, err)
	}
	return nil
}
