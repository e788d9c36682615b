package basesvc

import (
	"context"
	"fmt"

	"biz_connect/internal/common"
	"biz_connect/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck định nghĩa một quan hệ cần kiểm tra trước khi xóa record
type RelationshipCheck struct {
	CollectionName string // Collection chứa record tham chiếu
	FieldName      string // Field chứa ObjectID trỏ tới record cần xóa
	ErrorMessage   string // Message lỗi (chứa %d cho số lượng record tham chiếu)
	Optional       bool   // Bỏ qua nếu collection chưa được đăng ký
}

// CheckRelationshipExists kiểm tra có record nào trong collection khác đang trỏ tới record này không
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount trả về số lượng record đang tham chiếu tới record này
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Không tìm thấy collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteMember kiểm tra các quan hệ của Member trước khi xóa.
// Thành viên có hoạt động đã ghi nhận (referral, visitor, one-to-one, closed business)
// hoặc đã vote poll thì không được xóa để giữ toàn vẹn số liệu báo cáo.
func ValidateBeforeDeleteMember(ctx context.Context, memberID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.ActivityReferrals, FieldName: "memberId", ErrorMessage: "Không thể xóa thành viên vì có %d referral đã ghi nhận cho thành viên này."},
		{CollectionName: global.MongoDB_ColNames.ActivityReferrals, FieldName: "receiverMemberId", ErrorMessage: "Không thể xóa thành viên vì có %d referral thành viên này là người nhận."},
		{CollectionName: global.MongoDB_ColNames.ActivityVisitors, FieldName: "hostMemberId", ErrorMessage: "Không thể xóa thành viên vì có %d khách mời do thành viên này dẫn đến."},
		{CollectionName: global.MongoDB_ColNames.ActivityOneToOnes, FieldName: "memberAId", ErrorMessage: "Không thể xóa thành viên vì có %d buổi one-to-one đã ghi nhận."},
		{CollectionName: global.MongoDB_ColNames.ActivityOneToOnes, FieldName: "memberBId", ErrorMessage: "Không thể xóa thành viên vì có %d buổi one-to-one đã ghi nhận."},
		{CollectionName: global.MongoDB_ColNames.ActivityClosedBusiness, FieldName: "memberId", ErrorMessage: "Không thể xóa thành viên vì có %d giao dịch closed business đã ghi nhận."},
		{CollectionName: global.MongoDB_ColNames.PollVotes, FieldName: "memberId", ErrorMessage: "Không thể xóa thành viên vì thành viên đã tham gia %d lượt bình chọn."},
	}
	return CheckRelationshipExists(ctx, memberID, checks)
}

// ValidateBeforeDeletePoll kiểm tra các quan hệ của Poll trước khi xóa
func ValidateBeforeDeletePoll(ctx context.Context, pollID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.PollVotes, FieldName: "pollId", ErrorMessage: "Không thể xóa poll vì đã có %d lượt bình chọn. Hãy đóng poll thay vì xóa."},
	}
	return CheckRelationshipExists(ctx, pollID, checks)
}
