package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// ContentRepository 定义了成员主页需要的帖子、回帖、标签、清风明月与链接锻造的只读查询。
// 这些内容的写入由各自的服务负责，这里只做按作者分页与按 ID 批量读取。
type ContentRepository interface {
	// ListArticlesByAuthor 分页列出作者的有效帖子（按发布时间倒序）及总数
	ListArticlesByAuthor(ctx context.Context, authorID string, anonymous enums.Anonymous, offset, limit int) ([]*entities.Article, int64, error)

	// GetArticlesByIDs 按 ID 批量获取有效帖子，结果顺序与 ids 一致，缺失的 ID 被跳过
	GetArticlesByIDs(ctx context.Context, ids []string) ([]*entities.Article, error)

	// ListCommentsByAuthor 分页列出作者的有效回帖及总数
	ListCommentsByAuthor(ctx context.Context, authorID string, anonymous enums.Anonymous, offset, limit int) ([]*entities.Comment, int64, error)

	// GetTagsByIDs 按 ID 批量获取标签，结果顺序与 ids 一致
	GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error)

	// ListBreezemoonsByAuthor 分页列出作者的有效清风明月及总数
	ListBreezemoonsByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*entities.Breezemoon, int64, error)

	// ListForgedLinks 列出用户锻造的全部链接，按标签分组前的原始记录
	ListForgedLinks(ctx context.Context, userID string) ([]*ForgedLink, error)
}

// ForgedLink 是链接锻造的一条连接查询结果
type ForgedLink struct {
	TagID     string
	LinkID    string
	LinkAddr  string
	LinkTitle string
}

type contentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewContentRepository(db *gorm.DB, logger *zap.Logger) ContentRepository {
	return &contentRepository{db: db, logger: logger}
}

func (r *contentRepository) ListArticlesByAuthor(ctx context.Context, authorID string, anonymous enums.Anonymous, offset, limit int) ([]*entities.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Article{}).
		Where("author_id = ? AND anonymous = ? AND status = ?", authorID, anonymous, enums.ContentStatusValid).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计用户帖子失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("统计用户帖子失败: %w", err)
	}
	articles := make([]*entities.Article, 0)
	if total == 0 {
		return articles, 0, nil
	}
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&articles).Error; err != nil {
		r.logger.Error("分页查询用户帖子失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询用户帖子失败: %w", err)
	}
	return articles, total, nil
}

func (r *contentRepository) GetArticlesByIDs(ctx context.Context, ids []string) ([]*entities.Article, error) {
	if len(ids) == 0 {
		return []*entities.Article{}, nil
	}
	var found []*entities.Article
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, enums.ContentStatusValid).
		Find(&found).Error
	if err != nil {
		r.logger.Error("批量查询帖子失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("批量查询帖子失败: %w", err)
	}
	byID := make(map[string]*entities.Article, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	ordered := make([]*entities.Article, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}

func (r *contentRepository) ListCommentsByAuthor(ctx context.Context, authorID string, anonymous enums.Anonymous, offset, limit int) ([]*entities.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("author_id = ? AND anonymous = ? AND status = ?", authorID, anonymous, enums.ContentStatusValid).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计用户回帖失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("统计用户回帖失败: %w", err)
	}
	comments := make([]*entities.Comment, 0)
	if total == 0 {
		return comments, 0, nil
	}
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		r.logger.Error("分页查询用户回帖失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询用户回帖失败: %w", err)
	}
	return comments, total, nil
}

func (r *contentRepository) GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		return []*entities.Tag{}, nil
	}
	var found []*entities.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		r.logger.Error("批量查询标签失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("批量查询标签失败: %w", err)
	}
	byID := make(map[string]*entities.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	ordered := make([]*entities.Tag, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

func (r *contentRepository) ListBreezemoonsByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*entities.Breezemoon, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Breezemoon{}).
		Where("author_id = ? AND status = ?", authorID, enums.ContentStatusValid).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计清风明月失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("统计清风明月失败: %w", err)
	}
	bms := make([]*entities.Breezemoon, 0)
	if total == 0 {
		return bms, 0, nil
	}
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&bms).Error; err != nil {
		r.logger.Error("分页查询清风明月失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询清风明月失败: %w", err)
	}
	return bms, total, nil
}

func (r *contentRepository) ListForgedLinks(ctx context.Context, userID string) ([]*ForgedLink, error) {
	var rows []*ForgedLink
	err := r.db.WithContext(ctx).
		Table(entities.TagUserLink{}.TableName()+" AS tul").
		Select("tul.tag_id AS tag_id, l.id AS link_id, l.addr AS link_addr, l.title AS link_title").
		Joins("JOIN "+entities.Link{}.TableName()+" AS l ON l.id = tul.link_id").
		Where("tul.user_id = ?", userID).
		Order("tul.id DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("查询链接锻造失败", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("查询链接锻造失败: %w", err)
	}
	return rows, nil
}
