package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// 积分流水类型对应的文案键
var pointTypeLabels = map[enums.PointtransferType]string{
	enums.TransferTypeInit:            "pointTypeInitLabel",
	enums.TransferTypeAddArticle:      "pointTypeAddArticleLabel",
	enums.TransferTypeAddComment:      "pointTypeAddCommentLabel",
	enums.TransferTypeUpdateArticle:   "pointTypeUpdateArticleLabel",
	enums.TransferTypeArticleReward:   "pointTypeArticleRewardLabel",
	enums.TransferTypeCommentReward:   "pointTypeCommentRewardLabel",
	enums.TransferTypeInvitedRegister: "pointTypeInvitedRegisterLabel",
	enums.TransferTypeAccount2Account: "pointTypeAccount2AccountLabel",
	enums.TransferTypeCharge:          "pointTypeChargeLabel",
	enums.TransferTypeDataExport:      "pointTypeDataExportLabel",
	enums.TransferTypeBuyInvitecode:   "pointTypeBuyInvitecodeLabel",
}

// PointtransferMgmtService 积分账本写操作
type PointtransferMgmtService interface {
	// Transfer 在一个事务内完成扣减、增加与流水写入，成功返回流水 ID。
	// fromID/toID 为 constant.SYS 时跳过对应一侧的余额变动。失败时不产生任何变更，返回 "" 与错误。
	Transfer(ctx context.Context, fromID, toID string, typ enums.PointtransferType, sum int, dataID string, at int64) (string, error)
}

type pointtransferMgmtService struct {
	db     *gorm.DB
	repo   mysql.PointtransferRepository
	logger *zap.Logger
}

func NewPointtransferMgmtService(db *gorm.DB, repo mysql.PointtransferRepository, logger *zap.Logger) PointtransferMgmtService {
	return &pointtransferMgmtService{db: db, repo: repo, logger: logger}
}

func (s *pointtransferMgmtService) Transfer(ctx context.Context, fromID, toID string, typ enums.PointtransferType, sum int, dataID string, at int64) (string, error) {
	if sum < 0 {
		return "", fmt.Errorf("积分数额不能为负: %d", sum)
	}

	transfer := &entities.Pointtransfer{
		ID:     ids.Next(),
		FromID: fromID,
		ToID:   toID,
		Type:   typ,
		Sum:    sum,
		DataID: dataID,
		Time:   at,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fromID != constant.SYS {
			balance, err := s.repo.Debit(ctx, tx, fromID, sum)
			if err != nil {
				return err
			}
			transfer.FromBalance = balance
		}
		if toID != constant.SYS {
			balance, err := s.repo.Credit(ctx, tx, toID, sum)
			if err != nil {
				return err
			}
			transfer.ToBalance = balance
		}
		return s.repo.CreateTransfer(ctx, tx, transfer)
	})
	if err != nil {
		s.logger.Error("积分转账失败",
			zap.String("fromID", fromID),
			zap.String("toID", toID),
			zap.Int("type", int(typ)),
			zap.Int("sum", sum),
			zap.Error(err))
		return "", err
	}

	s.logger.Info("积分转账成功",
		zap.String("transferID", transfer.ID),
		zap.String("fromID", fromID),
		zap.String("toID", toID),
		zap.Int("sum", sum))
	return transfer.ID, nil
}

// PointtransferQueryService 积分明细查询
type PointtransferQueryService interface {
	// GetUserPoints 分页列出与用户相关的积分流水，收支方向相对于 userID
	GetUserPoints(ctx context.Context, userID string, page, size int) (vo.Page[*vo.PointRow], error)
}

type pointtransferQueryService struct {
	repo     mysql.PointtransferRepository
	userRepo mysql.UserRepository
	langSvc  lang.LangPropsService
	logger   *zap.Logger
}

func NewPointtransferQueryService(repo mysql.PointtransferRepository, userRepo mysql.UserRepository, langSvc lang.LangPropsService, logger *zap.Logger) PointtransferQueryService {
	return &pointtransferQueryService{repo: repo, userRepo: userRepo, langSvc: langSvc, logger: logger}
}

func (s *pointtransferQueryService) GetUserPoints(ctx context.Context, userID string, page, size int) (vo.Page[*vo.PointRow], error) {
	transfers, total, err := s.repo.ListUserTransfers(ctx, userID, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.PointRow]{}, fmt.Errorf("查询积分明细失败: %w", err)
	}

	counterpartIDs := make([]string, 0, len(transfers))
	for _, t := range transfers {
		if other := counterpartOf(t, userID); other != constant.SYS {
			counterpartIDs = append(counterpartIDs, other)
		}
	}
	counterparts, err := s.userRepo.GetUsersByIDs(ctx, counterpartIDs)
	if err != nil {
		return vo.Page[*vo.PointRow]{}, fmt.Errorf("查询积分明细对方用户失败: %w", err)
	}

	rows := make([]*vo.PointRow, 0, len(transfers))
	for _, t := range transfers {
		row := &vo.PointRow{
			OID:  t.ID,
			Type: t.Type,
			Sum:  t.Sum,
			Time: time.UnixMilli(t.Time),
		}
		if t.ToID == userID {
			row.DisplayType = enums.DisplayTypeIn
			row.Balance = t.ToBalance
		} else {
			row.DisplayType = enums.DisplayTypeOut
			row.Balance = t.FromBalance
		}

		desc := s.typeLabel(t.Type)
		other := counterpartOf(t, userID)
		if other != constant.SYS {
			if u, ok := counterparts[other]; ok {
				desc += " " + u.Name
			}
		}
		row.Description = desc
		rows = append(rows, row)
	}
	return vo.Page[*vo.PointRow]{Rows: rows, RecordCount: total}, nil
}

func (s *pointtransferQueryService) typeLabel(typ enums.PointtransferType) string {
	if key, ok := pointTypeLabels[typ]; ok {
		return s.langSvc.Get(key)
	}
	return s.langSvc.Get("systemLabel")
}

func counterpartOf(t *entities.Pointtransfer, userID string) string {
	if t.FromID == userID {
		return t.ToID
	}
	return t.FromID
}
