package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/dependencies"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// 导出时单次查询的条数
const exportBatchSize = 200

// ExportInsufficientBalance 是 ExportPosts 在余额不足时返回的值
const ExportInsufficientBalance = "-1"

// PostExportService 帖子导出
type PostExportService interface {
	// ExportPosts 导出用户全部帖子与回帖并上传到对象存储。
	// 余额不足返回 "-1"，失败返回 ""，成功返回文件 URL。
	ExportPosts(ctx context.Context, userID string) string
}

type postExportArchive struct {
	UserID     string              `json:"userId"`
	UserName   string              `json:"userName"`
	ExportedAt time.Time           `json:"exportedAt"`
	Articles   []*entities.Article `json:"articles"`
	Comments   []*entities.Comment `json:"comments"`
}

type postExportService struct {
	cfg         config.ExportConfig
	storage     dependencies.ObjectStorage
	userRepo    mysql.UserRepository
	contentRepo mysql.ContentRepository
	ledger      PointtransferMgmtService
	notifySvc   NotificationMgmtService
	logger      *zap.Logger
}

// NewPostExportService storage 为 nil 时导出始终失败
func NewPostExportService(
	cfg config.ExportConfig,
	storage dependencies.ObjectStorage,
	userRepo mysql.UserRepository,
	contentRepo mysql.ContentRepository,
	ledger PointtransferMgmtService,
	notifySvc NotificationMgmtService,
	logger *zap.Logger,
) PostExportService {
	return &postExportService{
		cfg:         cfg,
		storage:     storage,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		ledger:      ledger,
		notifySvc:   notifySvc,
		logger:      logger,
	}
}

func (s *postExportService) ExportPosts(ctx context.Context, userID string) string {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("导出帖子时查询用户失败", zap.String("userID", userID), zap.Error(err))
		return ""
	}
	if user.Point < s.cfg.Sum {
		return ExportInsufficientBalance
	}
	if s.storage == nil {
		s.logger.Warn("未配置对象存储，无法导出帖子", zap.String("userID", userID))
		return ""
	}

	archive, err := s.collect(ctx, user)
	if err != nil {
		s.logger.Error("收集导出数据失败", zap.String("userID", userID), zap.Error(err))
		return ""
	}
	payload, err := json.Marshal(archive)
	if err != nil {
		s.logger.Error("序列化导出数据失败", zap.String("userID", userID), zap.Error(err))
		return ""
	}

	objectKey := fmt.Sprintf("%s%s/%s.json", s.cfg.ObjectKeyPrefix, userID, uuid.NewString())
	url, err := s.storage.PutObject(ctx, objectKey, bytes.NewReader(payload), int64(len(payload)), "application/json")
	if err != nil {
		s.logger.Error("上传导出文件失败", zap.String("objectKey", objectKey), zap.Error(err))
		return ""
	}

	transferID, err := s.ledger.Transfer(ctx, userID, constant.SYS, enums.TransferTypeDataExport, s.cfg.Sum, objectKey, time.Now().UnixMilli())
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, objectKey); delErr != nil {
			s.logger.Error("扣费失败后删除导出文件失败", zap.String("objectKey", objectKey), zap.Error(delErr))
		}
		// 预检查之后余额可能被其他请求扣减
		if errors.Is(err, myErrors.ErrInsufficientBalance) {
			return ExportInsufficientBalance
		}
		return ""
	}

	if err := s.notifySvc.AddNotification(ctx, userID, transferID, enums.NotificationPointExport); err != nil {
		s.logger.Warn("添加导出通知失败", zap.String("userID", userID), zap.Error(err))
	}
	return url
}

func (s *postExportService) collect(ctx context.Context, user *entities.User) (*postExportArchive, error) {
	archive := &postExportArchive{
		UserID:     user.ID,
		UserName:   user.Name,
		ExportedAt: time.Now(),
		Articles:   []*entities.Article{},
		Comments:   []*entities.Comment{},
	}
	for _, anonymous := range []enums.Anonymous{enums.AnonymousPublic, enums.AnonymousAnonymous} {
		for offset := 0; ; offset += exportBatchSize {
			articles, total, err := s.contentRepo.ListArticlesByAuthor(ctx, user.ID, anonymous, offset, exportBatchSize)
			if err != nil {
				return nil, err
			}
			archive.Articles = append(archive.Articles, articles...)
			if int64(offset+exportBatchSize) >= total {
				break
			}
		}
		for offset := 0; ; offset += exportBatchSize {
			comments, total, err := s.contentRepo.ListCommentsByAuthor(ctx, user.ID, anonymous, offset, exportBatchSize)
			if err != nil {
				return nil, err
			}
			archive.Comments = append(archive.Comments, comments...)
			if int64(offset+exportBatchSize) >= total {
				break
			}
		}
	}
	return archive, nil
}
