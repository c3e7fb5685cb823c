package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// 每个标签下最多展示的锻造链接数
const forgeLinksPerTag = 10

// createTimeOf 由毫秒时间戳 ID 得到创建时间，无法解析时为零值
func createTimeOf(id string) time.Time {
	t, _ := ids.Time(id)
	return t
}

// articleRowBuilder 把帖子实体转换为列表行，补齐作者名与缩略头像
type articleRowBuilder struct {
	userRepo     mysql.UserRepository
	avatarSvc    AvatarQueryService
	someoneLabel string
}

func (b articleRowBuilder) build(ctx context.Context, mode enums.AvatarViewMode, articles []*entities.Article) ([]*vo.ArticleRow, error) {
	authorIDs := make([]string, 0, len(articles))
	for _, a := range articles {
		authorIDs = append(authorIDs, a.AuthorID)
	}
	authors, err := b.userRepo.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("查询帖子作者失败: %w", err)
	}

	rows := make([]*vo.ArticleRow, 0, len(articles))
	for _, a := range articles {
		row := &vo.ArticleRow{
			OID:                 a.ID,
			ArticleTitle:        a.Title,
			ArticleTags:         a.Tags,
			ArticleCommentCount: a.CommentCnt,
			ArticleViewCount:    a.ViewCnt,
			ArticleAnonymous:    a.Anonymous,
			ArticleCreateTime:   createTimeOf(a.ID),
		}
		author := authors[a.AuthorID]
		if a.Anonymous == enums.AnonymousAnonymous || author == nil {
			row.ArticleAuthorName = b.someoneLabel
			row.ArticleAuthorThumbURL = b.avatarSvc.GetAvatarURLByUser(mode, nil, "48")
		} else {
			row.ArticleAuthorName = author.Name
			row.ArticleAuthorThumbURL = b.avatarSvc.GetAvatarURLByUser(mode, author, "48")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ArticleQueryService 用户帖子查询
type ArticleQueryService interface {
	// GetUserArticles 按发布时间倒序分页列出用户的公开或匿名帖子
	GetUserArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, anonymous enums.Anonymous, page, size int) (vo.Page[*vo.ArticleRow], error)
}

type articleQueryService struct {
	contentRepo mysql.ContentRepository
	rows        articleRowBuilder
	logger      *zap.Logger
}

func NewArticleQueryService(contentRepo mysql.ContentRepository, userRepo mysql.UserRepository, avatarSvc AvatarQueryService, someoneLabel string, logger *zap.Logger) ArticleQueryService {
	return &articleQueryService{
		contentRepo: contentRepo,
		rows:        articleRowBuilder{userRepo: userRepo, avatarSvc: avatarSvc, someoneLabel: someoneLabel},
		logger:      logger,
	}
}

func (s *articleQueryService) GetUserArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, anonymous enums.Anonymous, page, size int) (vo.Page[*vo.ArticleRow], error) {
	articles, total, err := s.contentRepo.ListArticlesByAuthor(ctx, userID, anonymous, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.ArticleRow]{}, fmt.Errorf("查询用户帖子失败: %w", err)
	}
	rows, err := s.rows.build(ctx, mode, articles)
	if err != nil {
		return vo.Page[*vo.ArticleRow]{}, err
	}
	// 匿名帖子列表只会展示给作者本人或管理员，作者名保持可见
	if anonymous == enums.AnonymousAnonymous {
		if owner, err := s.rows.userRepo.GetUserByID(ctx, userID); err == nil {
			for _, r := range rows {
				r.ArticleAuthorName = owner.Name
				r.ArticleAuthorThumbURL = s.rows.avatarSvc.GetAvatarURLByUser(mode, owner, "48")
			}
		}
	}
	return vo.Page[*vo.ArticleRow]{Rows: rows, RecordCount: total}, nil
}

// CommentQueryService 用户回帖查询
type CommentQueryService interface {
	// GetUserComments 分页列出用户回帖。viewer 为 nil 表示匿名访客。
	GetUserComments(ctx context.Context, mode enums.AvatarViewMode, userID string, anonymous enums.Anonymous, page, size int, viewer *entities.User) (vo.Page[*vo.CommentRow], error)
}

type commentQueryService struct {
	contentRepo  mysql.ContentRepository
	userRepo     mysql.UserRepository
	avatarSvc    AvatarQueryService
	someoneLabel string
	logger       *zap.Logger
}

func NewCommentQueryService(contentRepo mysql.ContentRepository, userRepo mysql.UserRepository, avatarSvc AvatarQueryService, someoneLabel string, logger *zap.Logger) CommentQueryService {
	return &commentQueryService{
		contentRepo:  contentRepo,
		userRepo:     userRepo,
		avatarSvc:    avatarSvc,
		someoneLabel: someoneLabel,
		logger:       logger,
	}
}

func (s *commentQueryService) GetUserComments(ctx context.Context, mode enums.AvatarViewMode, userID string, anonymous enums.Anonymous, page, size int, viewer *entities.User) (vo.Page[*vo.CommentRow], error) {
	comments, total, err := s.contentRepo.ListCommentsByAuthor(ctx, userID, anonymous, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.CommentRow]{}, fmt.Errorf("查询用户回帖失败: %w", err)
	}
	if len(comments) == 0 {
		return vo.Page[*vo.CommentRow]{Rows: []*vo.CommentRow{}, RecordCount: total}, nil
	}

	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return vo.Page[*vo.CommentRow]{}, fmt.Errorf("查询回帖作者失败: %w", err)
	}

	articleIDs := make([]string, 0, len(comments))
	for _, cmt := range comments {
		articleIDs = append(articleIDs, cmt.ArticleID)
	}
	articles, err := s.contentRepo.GetArticlesByIDs(ctx, articleIDs)
	if err != nil {
		return vo.Page[*vo.CommentRow]{}, fmt.Errorf("查询回帖所属帖子失败: %w", err)
	}
	titles := make(map[string]string, len(articles))
	for _, a := range articles {
		titles[a.ID] = a.Title
	}

	revealed := viewer != nil && (viewer.ID == userID || viewer.Role == constant.RoleAdmin)
	rows := make([]*vo.CommentRow, 0, len(comments))
	for _, cmt := range comments {
		row := &vo.CommentRow{
			OID:                 cmt.ID,
			CommentContent:      cmt.Content,
			CommentAnonymous:    cmt.Anonymous,
			CommentArticleID:    cmt.ArticleID,
			CommentArticleTitle: titles[cmt.ArticleID],
			CommentCreateTime:   createTimeOf(cmt.ID),
		}
		if cmt.Anonymous == enums.AnonymousAnonymous && !revealed {
			row.CommentAuthorName = s.someoneLabel
			row.CommentAuthorThumbURL = s.avatarSvc.GetAvatarURLByUser(mode, nil, "48")
		} else {
			row.CommentAuthorName = author.Name
			row.CommentAuthorThumbURL = s.avatarSvc.GetAvatarURLByUser(mode, author, "48")
		}
		rows = append(rows, row)
	}
	return vo.Page[*vo.CommentRow]{Rows: rows, RecordCount: total}, nil
}

// BreezemoonQueryService 清风明月查询
type BreezemoonQueryService interface {
	GetBreezemoons(ctx context.Context, mode enums.AvatarViewMode, viewerID, userID string, page, size int) (vo.Page[*vo.BreezemoonRow], error)
}

type breezemoonQueryService struct {
	contentRepo mysql.ContentRepository
	userRepo    mysql.UserRepository
	avatarSvc   AvatarQueryService
	logger      *zap.Logger
}

func NewBreezemoonQueryService(contentRepo mysql.ContentRepository, userRepo mysql.UserRepository, avatarSvc AvatarQueryService, logger *zap.Logger) BreezemoonQueryService {
	return &breezemoonQueryService{contentRepo: contentRepo, userRepo: userRepo, avatarSvc: avatarSvc, logger: logger}
}

func (s *breezemoonQueryService) GetBreezemoons(ctx context.Context, mode enums.AvatarViewMode, viewerID, userID string, page, size int) (vo.Page[*vo.BreezemoonRow], error) {
	moons, total, err := s.contentRepo.ListBreezemoonsByAuthor(ctx, userID, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.BreezemoonRow]{}, fmt.Errorf("查询清风明月失败: %w", err)
	}
	if len(moons) == 0 {
		return vo.Page[*vo.BreezemoonRow]{Rows: []*vo.BreezemoonRow{}, RecordCount: total}, nil
	}
	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return vo.Page[*vo.BreezemoonRow]{}, fmt.Errorf("查询清风明月作者失败: %w", err)
	}
	thumb := s.avatarSvc.GetAvatarURLByUser(mode, author, "48")

	rows := make([]*vo.BreezemoonRow, 0, len(moons))
	for _, m := range moons {
		rows = append(rows, &vo.BreezemoonRow{
			OID:                      m.ID,
			BreezemoonContent:        m.Content,
			BreezemoonAuthorName:     author.Name,
			BreezemoonAuthorThumbURL: thumb,
			BreezemoonCity:           m.City,
			BreezemoonCreateTime:     createTimeOf(m.ID),
			BreezemoonMine:           viewerID != "" && viewerID == m.AuthorID,
		})
	}
	return vo.Page[*vo.BreezemoonRow]{Rows: rows, RecordCount: total}, nil
}

// LinkForgeQueryService 链接锻造查询
type LinkForgeQueryService interface {
	// GetUserForgedLinks 返回用户锻造过链接的标签，每个标签最多带 10 个链接
	GetUserForgedLinks(ctx context.Context, userID string) ([]*vo.ForgeTag, error)
}

type linkForgeQueryService struct {
	contentRepo mysql.ContentRepository
	logger      *zap.Logger
}

func NewLinkForgeQueryService(contentRepo mysql.ContentRepository, logger *zap.Logger) LinkForgeQueryService {
	return &linkForgeQueryService{contentRepo: contentRepo, logger: logger}
}

func (s *linkForgeQueryService) GetUserForgedLinks(ctx context.Context, userID string) ([]*vo.ForgeTag, error) {
	links, err := s.contentRepo.ListForgedLinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询锻造链接失败: %w", err)
	}

	tagIDs := make([]string, 0)
	grouped := map[string][]vo.LinkRow{}
	for _, l := range links {
		if _, seen := grouped[l.TagID]; !seen {
			tagIDs = append(tagIDs, l.TagID)
			grouped[l.TagID] = []vo.LinkRow{}
		}
		if len(grouped[l.TagID]) >= forgeLinksPerTag {
			continue
		}
		grouped[l.TagID] = append(grouped[l.TagID], vo.LinkRow{OID: l.LinkID, LinkAddr: l.LinkAddr, LinkTitle: l.LinkTitle})
	}

	tags, err := s.contentRepo.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("查询锻造标签失败: %w", err)
	}
	byID := make(map[string]*entities.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	result := make([]*vo.ForgeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		t, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, &vo.ForgeTag{
			OID:         t.ID,
			TagTitle:    t.Title,
			TagURI:      t.URI,
			TagIconPath: t.IconPath,
			TagLinks:    grouped[id],
		})
	}
	return result, nil
}
