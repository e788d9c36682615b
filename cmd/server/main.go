package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"biz_connect/internal/global"
	"biz_connect/internal/logger"
	"biz_connect/internal/metrics"
	"biz_connect/internal/notification"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// mainThread khởi tạo và chạy Fiber server
func mainThread() {
	app, err := InitFiberApp()
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize Fiber app: %v", err)
	}

	cfg := global.ServerConfig
	address := cfg.Address
	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Resolve đường dẫn tương đối tính từ thư mục gốc dự án (nơi có config/env)
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// startReminderWorker chạy worker gửi email nhắc lịch sự kiện trong nền.
// Thiếu cấu hình SMTP thì bỏ qua, server vẫn chạy bình thường.
func startReminderWorker(ctx context.Context) {
	log := logger.GetAppLogger()

	sender, err := notification.NewEmailSender(global.ServerConfig)
	if err != nil {
		log.WithError(err).Warn("Bỏ qua reminder worker: chưa cấu hình SMTP")
		return
	}

	worker, err := notification.NewReminderWorker(sender)
	if err != nil {
		log.WithError(err).Error("Không khởi tạo được reminder worker")
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{"panic": r}).Error("Reminder worker panic")
			}
		}()
		log.Info("Starting reminder worker...")
		worker.Run(ctx)
	}()
}

func main() {
	initLogger()

	// Khởi tạo các biến toàn cục: collection names, validator, config, database
	InitGlobal()

	// Đăng ký các collection vào registry và tạo index
	InitRegistry()

	// Seed thành viên quản trị đầu tiên khi database trống
	InitDefaultData()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics server chạy trên cổng riêng
	if global.ServerConfig.MetricsEnabled {
		metrics.Serve(global.ServerConfig.MetricsAddress)
	}

	startReminderWorker(ctx)

	// Chạy Fiber server trên main thread
	mainThread()
}
