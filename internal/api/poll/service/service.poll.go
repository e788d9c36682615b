// Package pollsvc - service cho domain poll.
package pollsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "biz_connect/internal/api/base/service"
	polldto "biz_connect/internal/api/poll/dto"
	models "biz_connect/internal/api/poll/models"
	"biz_connect/internal/common"
	"biz_connect/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PollService xử lý nghiệp vụ khảo sát.
type PollService struct {
	*basesvc.BaseServiceMongoImpl[models.Poll]
	voteService *PollVoteService
}

// NewPollService tạo mới PollService
func NewPollService() (*PollService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Polls)
	if !exist {
		return nil, fmt.Errorf("failed to get polls collection: %v", common.ErrNotFound)
	}
	voteService, err := NewPollVoteService()
	if err != nil {
		return nil, err
	}
	return &PollService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Poll](collection),
		voteService:          voteService,
	}, nil
}

// InsertOne tạo khảo sát mới, mặc định đang mở.
func (s *PollService) InsertOne(ctx context.Context, data models.Poll) (models.Poll, error) {
	data.IsOpen = true
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// Close đóng khảo sát. Poll đóng không nhận bình chọn mới nhưng kết quả
// vẫn xem được.
func (s *PollService) Close(ctx context.Context, id primitive.ObjectID) (models.Poll, error) {
	logrus.WithField("pollId", id.Hex()).Info("Đóng khảo sát")
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isOpen": false},
	})
}

// DeleteById xóa khảo sát sau khi chắc chắn chưa có lượt bình chọn nào.
func (s *PollService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeletePoll(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// CastVote ghi nhận bình chọn của một thành viên.
// Mỗi thành viên chỉ được bình chọn một lần cho mỗi poll; lần thứ hai bị
// index unique (pollId, memberId) chặn và trả về ErrAlreadyVoted.
func (s *PollService) CastVote(ctx context.Context, pollID, memberID primitive.ObjectID, optionIndex int) (models.PollVote, error) {
	poll, err := s.FindOneById(ctx, pollID)
	if err != nil {
		return models.PollVote{}, err
	}
	if !poll.IsOpen {
		return models.PollVote{}, common.NewError(
			common.ErrCodeBusinessState,
			"Khảo sát đã đóng, không nhận bình chọn mới",
			common.StatusBadRequest,
			nil,
		)
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return models.PollVote{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Phương án %d không tồn tại, khảo sát có %d phương án", optionIndex, len(poll.Options)),
			common.StatusBadRequest,
			nil,
		)
	}

	vote, err := s.voteService.InsertOne(ctx, models.PollVote{
		PollID:      pollID,
		MemberID:    memberID,
		OptionIndex: optionIndex,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return models.PollVote{}, common.ErrAlreadyVoted
		}
		return models.PollVote{}, err
	}

	logrus.WithFields(logrus.Fields{
		"pollId":   pollID.Hex(),
		"memberId": memberID.Hex(),
	}).Info("Ghi nhận bình chọn")
	return vote, nil
}

// Results tổng hợp kết quả bình chọn theo từng phương án.
// Lượt bình chọn trỏ tới phương án ngoài phạm vi (poll bị sửa tay trong DB)
// chỉ tính vào tổng, không gán cho phương án nào.
func (s *PollService) Results(ctx context.Context, pollID primitive.ObjectID) (polldto.PollResults, error) {
	poll, err := s.FindOneById(ctx, pollID)
	if err != nil {
		return polldto.PollResults{}, err
	}

	votes, err := s.voteService.Find(ctx, bson.M{"pollId": pollID}, nil)
	if err != nil {
		return polldto.PollResults{}, err
	}

	results := polldto.PollResults{
		PollID:     poll.ID.Hex(),
		Question:   poll.Question,
		IsOpen:     poll.IsOpen,
		Options:    make([]polldto.PollOptionResult, len(poll.Options)),
		TotalVotes: len(votes),
	}
	for i, option := range poll.Options {
		results.Options[i] = polldto.PollOptionResult{Option: option}
	}
	for _, vote := range votes {
		if vote.OptionIndex >= 0 && vote.OptionIndex < len(results.Options) {
			results.Options[vote.OptionIndex].Votes++
		}
	}
	return results, nil
}

// PollVoteService xử lý lưu trữ lượt bình chọn.
type PollVoteService struct {
	*basesvc.BaseServiceMongoImpl[models.PollVote]
}

// NewPollVoteService tạo mới PollVoteService
func NewPollVoteService() (*PollVoteService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PollVotes)
	if !exist {
		return nil, fmt.Errorf("failed to get poll_votes collection: %v", common.ErrNotFound)
	}
	return &PollVoteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PollVote](collection),
	}, nil
}
