package main

import (
	"context"
	"time"

	membermodels "biz_connect/internal/api/member/models"
	membersvc "biz_connect/internal/api/member/service"
	"biz_connect/internal/global"
	"biz_connect/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed thành viên quản trị đầu tiên khi database chưa có
// quản trị viên nào. Bỏ qua khi thiếu ADMIN_EMAIL hoặc ADMIN_PASSWORD.
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	memberService, err := membersvc.NewMemberService()
	if err != nil {
		log.Fatalf("Failed to initialize member service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := memberService.CountDocuments(ctx, bson.M{"isAdmin": true})
	if err != nil {
		log.Fatalf("Failed to count administrators: %v", err)
	}
	if count > 0 {
		log.Info("Administrator already exists, skipping admin seed")
		return
	}

	admin, err := memberService.InsertOne(ctx, membermodels.Member{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		IsAdmin:  true,
	})
	if err != nil {
		log.Fatalf("Failed to seed administrator: %v", err)
	}
	log.Infof("Seeded administrator %s (ID: %s)", admin.Email, admin.ID.Hex())
}
