package main

import (
	"context"

	"biz_connect/config"
	activitymodels "biz_connect/internal/api/activity/models"
	eventmodels "biz_connect/internal/api/event/models"
	membermodels "biz_connect/internal/api/member/models"
	pollmodels "biz_connect/internal/api/poll/models"
	"biz_connect/internal/database"
	"biz_connect/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator với các custom rules
	initConfig()           // Cấu hình server từ env
	initDatabase_MongoDB() // Kết nối database và tạo index
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator (đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo collections tồn tại và tạo index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Tạo index cho các collection theo tag `index` của model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()

	indexTargets := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Members, membermodels.Member{}},
		{global.MongoDB_ColNames.ActivityReferrals, activitymodels.ActivityReferral{}},
		{global.MongoDB_ColNames.ActivityVisitors, activitymodels.ActivityVisitor{}},
		{global.MongoDB_ColNames.ActivityOneToOnes, activitymodels.ActivityOneToOne{}},
		{global.MongoDB_ColNames.ActivityClosedBusiness, activitymodels.ActivityClosedBusiness{}},
		{global.MongoDB_ColNames.Events, eventmodels.Event{}},
		{global.MongoDB_ColNames.Polls, pollmodels.Poll{}},
		{global.MongoDB_ColNames.PollVotes, pollmodels.PollVote{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(ctx, db.Collection(target.collection), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.collection, err)
		}
	}
	logrus.Info("Created indexes for all collections")
}
