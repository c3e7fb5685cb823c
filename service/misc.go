package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// 用户没有保存常用表情时返回的默认表情
var defaultEmojis = []string{
	"smile", "flushed", "joy", "sob", "yum", "trollface", "tada", "heart", "+1", "ok_hand", "pray",
}

// OptionQueryService 站点选项查询
type OptionQueryService interface {
	// GetAllowRegister 返回注册开放方式，未配置时视为开放注册
	GetAllowRegister(ctx context.Context) string
}

type optionQueryService struct {
	repo   mysql.OptionRepository
	logger *zap.Logger
}

func NewOptionQueryService(repo mysql.OptionRepository, logger *zap.Logger) OptionQueryService {
	return &optionQueryService{repo: repo, logger: logger}
}

func (s *optionQueryService) GetAllowRegister(ctx context.Context) string {
	opt, err := s.repo.GetOption(ctx, constant.OptionAllowRegister)
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Error("读取注册选项失败", zap.Error(err))
		}
		return constant.AllowRegisterOpen
	}
	return opt.Value
}

// EmotionQueryService 表情查询
type EmotionQueryService interface {
	// GetEmojis 返回用户常用表情，逗号分隔
	GetEmojis(ctx context.Context, userID string) (string, error)
}

type emotionQueryService struct {
	repo   mysql.EmotionRepository
	logger *zap.Logger
}

func NewEmotionQueryService(repo mysql.EmotionRepository, logger *zap.Logger) EmotionQueryService {
	return &emotionQueryService{repo: repo, logger: logger}
}

func (s *emotionQueryService) GetEmojis(ctx context.Context, userID string) (string, error) {
	emotions, err := s.repo.ListEmotionsByUser(ctx, userID, enums.EmotionTypeEmoji)
	if err != nil {
		return "", err
	}
	if len(emotions) == 0 {
		return strings.Join(defaultEmojis, ","), nil
	}
	contents := make([]string, 0, len(emotions))
	for _, e := range emotions {
		contents = append(contents, e.Content)
	}
	return strings.Join(contents, ","), nil
}
