package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// FollowQueryService 关注关系查询
type FollowQueryService interface {
	// IsFollowing 判断 followerID 是否关注了 followingID
	IsFollowing(ctx context.Context, followerID, followingID string, kind enums.FollowingType) (bool, error)

	// IsFollowingAll 批量判断，返回的 map 包含 ids 中的每一个 ID
	IsFollowingAll(ctx context.Context, followerID string, ids []string, kind enums.FollowingType) (map[string]bool, error)

	GetFollowingUsers(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.UserRow], error)
	GetFollowingTags(ctx context.Context, userID string, page, size int) (vo.Page[*vo.TagRow], error)
	GetFollowingArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.FollowingArticleRow], error)
	GetWatchingArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.FollowingArticleRow], error)
	GetFollowerUsers(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.UserRow], error)
}

type followQueryService struct {
	followRepo  mysql.FollowRepository
	userRepo    mysql.UserRepository
	contentRepo mysql.ContentRepository
	avatarSvc   AvatarQueryService
	articleRows articleRowBuilder
	logger      *zap.Logger
}

func NewFollowQueryService(
	followRepo mysql.FollowRepository,
	userRepo mysql.UserRepository,
	contentRepo mysql.ContentRepository,
	avatarSvc AvatarQueryService,
	someoneLabel string,
	logger *zap.Logger,
) FollowQueryService {
	return &followQueryService{
		followRepo:  followRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		avatarSvc:   avatarSvc,
		articleRows: articleRowBuilder{userRepo: userRepo, avatarSvc: avatarSvc, someoneLabel: someoneLabel},
		logger:      logger,
	}
}

func (s *followQueryService) IsFollowing(ctx context.Context, followerID, followingID string, kind enums.FollowingType) (bool, error) {
	if followerID == "" || followingID == "" {
		return false, nil
	}
	return s.followRepo.Exists(ctx, followerID, followingID, kind)
}

func (s *followQueryService) IsFollowingAll(ctx context.Context, followerID string, ids []string, kind enums.FollowingType) (map[string]bool, error) {
	result := make(map[string]bool, len(ids))
	for _, id := range ids {
		result[id] = false
	}
	if followerID == "" || len(ids) == 0 {
		return result, nil
	}
	followed, err := s.followRepo.FindFollowed(ctx, followerID, ids, kind)
	if err != nil {
		return nil, err
	}
	for id := range followed {
		result[id] = true
	}
	return result, nil
}

func (s *followQueryService) GetFollowingUsers(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.UserRow], error) {
	ids, total, err := s.followRepo.ListFollowingIDs(ctx, userID, enums.FollowingUser, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.UserRow]{}, fmt.Errorf("查询关注用户失败: %w", err)
	}
	return s.userPage(ctx, mode, ids, total)
}

func (s *followQueryService) GetFollowerUsers(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.UserRow], error) {
	ids, total, err := s.followRepo.ListFollowerIDs(ctx, userID, enums.FollowingUser, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.UserRow]{}, fmt.Errorf("查询粉丝失败: %w", err)
	}
	return s.userPage(ctx, mode, ids, total)
}

func (s *followQueryService) userPage(ctx context.Context, mode enums.AvatarViewMode, ids []string, total int64) (vo.Page[*vo.UserRow], error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return vo.Page[*vo.UserRow]{}, err
	}
	rows := make([]*vo.UserRow, 0, len(ids))
	for _, id := range ids {
		u, ok := users[id]
		if !ok {
			// 关注关系还在，用户已被删除
			continue
		}
		rows = append(rows, &vo.UserRow{
			OID:           u.ID,
			UserName:      u.Name,
			UserNickname:  u.Nickname,
			UserIntro:     u.Intro,
			UserAvatarURL: s.avatarSvc.GetAvatarURLByUser(mode, u, "48"),
			UserPoint:     u.Point,
		})
	}
	return vo.Page[*vo.UserRow]{Rows: rows, RecordCount: total}, nil
}

func (s *followQueryService) GetFollowingTags(ctx context.Context, userID string, page, size int) (vo.Page[*vo.TagRow], error) {
	ids, total, err := s.followRepo.ListFollowingIDs(ctx, userID, enums.FollowingTag, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.TagRow]{}, fmt.Errorf("查询关注标签失败: %w", err)
	}
	tags, err := s.contentRepo.GetTagsByIDs(ctx, ids)
	if err != nil {
		return vo.Page[*vo.TagRow]{}, err
	}
	byID := make(map[string]*entities.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	rows := make([]*vo.TagRow, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			continue
		}
		rows = append(rows, &vo.TagRow{
			OID:               t.ID,
			TagTitle:          t.Title,
			TagURI:            t.URI,
			TagIconPath:       t.IconPath,
			TagReferenceCount: t.ReferenceCnt,
			TagFollowerCount:  t.FollowerCnt,
		})
	}
	return vo.Page[*vo.TagRow]{Rows: rows, RecordCount: total}, nil
}

func (s *followQueryService) GetFollowingArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.FollowingArticleRow], error) {
	return s.articlePage(ctx, mode, userID, enums.FollowingArticle, page, size)
}

func (s *followQueryService) GetWatchingArticles(ctx context.Context, mode enums.AvatarViewMode, userID string, page, size int) (vo.Page[*vo.FollowingArticleRow], error) {
	return s.articlePage(ctx, mode, userID, enums.FollowingArticleWatch, page, size)
}

func (s *followQueryService) articlePage(ctx context.Context, mode enums.AvatarViewMode, userID string, kind enums.FollowingType, page, size int) (vo.Page[*vo.FollowingArticleRow], error) {
	ids, total, err := s.followRepo.ListFollowingIDs(ctx, userID, kind, offsetOf(page, size), size)
	if err != nil {
		return vo.Page[*vo.FollowingArticleRow]{}, fmt.Errorf("查询关注帖子失败: %w", err)
	}
	articles, err := s.contentRepo.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return vo.Page[*vo.FollowingArticleRow]{}, err
	}
	byID := make(map[string]*entities.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	ordered := make([]*entities.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	built, err := s.articleRows.build(ctx, mode, ordered)
	if err != nil {
		return vo.Page[*vo.FollowingArticleRow]{}, err
	}
	rows := make([]*vo.FollowingArticleRow, 0, len(built))
	for _, r := range built {
		rows = append(rows, &vo.FollowingArticleRow{ArticleRow: *r})
	}
	return vo.Page[*vo.FollowingArticleRow]{Rows: rows, RecordCount: total}, nil
}

func offsetOf(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
