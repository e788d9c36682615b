package global

import (
	"biz_connect/config"
	"biz_connect/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Members                string // Tên collection cho thành viên
	ActivityReferrals      string // Tên collection cho hoạt động giới thiệu
	ActivityVisitors       string // Tên collection cho khách mời tham dự
	ActivityOneToOnes      string // Tên collection cho gặp gỡ 1-1
	ActivityClosedBusiness string // Tên collection cho giao dịch chốt thành công
	Events                 string // Tên collection cho sự kiện
	Polls                  string // Tên collection cho khảo sát
	PollVotes              string // Tên collection cho phiếu bình chọn
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames CollectionName            // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// InitColNames gán tên collection chuẩn cho toàn hệ thống.
// Gọi một lần khi khởi động, trước khi đăng ký collections vào registry.
func InitColNames() {
	MongoDB_ColNames = CollectionName{
		Members:                "members",
		ActivityReferrals:      "activity_referrals",
		ActivityVisitors:       "activity_visitors",
		ActivityOneToOnes:      "activity_one_to_ones",
		ActivityClosedBusiness: "activity_closed_business",
		Events:                 "events",
		Polls:                  "polls",
		PollVotes:              "poll_votes",
	}
}
