package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/service"
)

// 每个用户生成的内容数量
const (
	articlesPerUser    = 6
	commentsPerUser    = 10
	breezemoonsPerUser = 4
	initPoint          = 500
)

// Seeder 生成成员主页所需的全部测试数据
type Seeder struct {
	db     *gorm.DB
	ledger service.PointtransferMgmtService
	logger *zap.Logger
}

// Run 依次生成角色、站点选项、用户、标签、内容、关注关系与积分流水
func (s *Seeder) Run(ctx context.Context, numUsers int) error {
	if err := s.seedRolesAndOptions(ctx); err != nil {
		return err
	}
	users, err := s.seedUsers(ctx, numUsers)
	if err != nil {
		return err
	}
	tags, err := s.seedTags(ctx)
	if err != nil {
		return err
	}
	articles, err := s.seedContent(ctx, users, tags)
	if err != nil {
		return err
	}
	if err := s.seedFollows(ctx, users, tags, articles); err != nil {
		return err
	}
	return s.seedPoints(ctx, users)
}

func (s *Seeder) seedRolesAndOptions(ctx context.Context) error {
	all := strings.Join(constant.AllPermissions, ",")
	roles := []entities.Role{
		{ID: constant.RoleAdmin, Name: "管理员", Description: "拥有全部权限", Permissions: all},
		{ID: constant.RoleDefault, Name: "普通成员", Description: "社区默认角色", Permissions: all},
		{ID: constant.RoleVisitor, Name: "访客", Description: "未登录访客"},
	}
	options := []entities.Option{
		{ID: constant.OptionAllowRegister, Category: constant.OptionCategoryMisc, Value: constant.AllowRegisterInviteOnly},
	}

	db := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})
	if err := db.Create(&roles).Error; err != nil {
		return fmt.Errorf("写入角色失败: %w", err)
	}
	if err := db.Create(&options).Error; err != nil {
		return fmt.Errorf("写入站点选项失败: %w", err)
	}
	s.logger.Info("角色与站点选项已就绪")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, n int) ([]*entities.User, error) {
	users := make([]*entities.User, 0, n)
	for i := 0; i < n; i++ {
		role := constant.RoleDefault
		if i == 0 {
			role = constant.RoleAdmin
		}
		users = append(users, &entities.User{
			ID:             ids.Next(),
			Name:           fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:          gofakeit.Email(),
			Nickname:       gofakeit.Name(),
			Intro:          gofakeit.Sentence(8),
			URL:            gofakeit.URL(),
			AvatarURL:      gofakeit.ImageURL(210, 210),
			AvatarViewMode: enums.AvatarViewModeOriginal,
			Role:           role,
			Status:         enums.UserStatusValid,
			City:           gofakeit.City(),
		})
	}
	// 最后一个用户保持未验证状态，用于验证清理任务
	users[n-1].Status = enums.UserStatusNotVerified

	if err := s.db.WithContext(ctx).CreateInBatches(users, 100).Error; err != nil {
		return nil, fmt.Errorf("写入用户失败: %w", err)
	}

	emotions := make([]entities.Emotion, 0, len(users))
	for i, u := range users {
		emotions = append(emotions, entities.Emotion{
			ID: ids.Next(), UserID: u.ID, Content: gofakeit.RandomString([]string{"smile", "joy", "heart", "+1", "tada"}),
			Type: enums.EmotionTypeEmoji, Sort: i,
		})
	}
	if err := s.db.WithContext(ctx).Create(&emotions).Error; err != nil {
		return nil, fmt.Errorf("写入常用表情失败: %w", err)
	}

	s.logger.Info("用户已生成", zap.Int("count", len(users)))
	return users, nil
}

func (s *Seeder) seedTags(ctx context.Context) ([]*entities.Tag, error) {
	titles := []string{"Go", "Java", "分布式", "数据库", "前端", "运维", "随笔", "问答"}
	tags := make([]*entities.Tag, 0, len(titles))
	for _, title := range titles {
		tags = append(tags, &entities.Tag{
			ID:           ids.Next(),
			Title:        title,
			URI:          "/tag/" + title,
			IconPath:     gofakeit.ImageURL(32, 32),
			ReferenceCnt: gofakeit.Number(1, 500),
		})
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error; err != nil {
		return nil, fmt.Errorf("写入标签失败: %w", err)
	}
	return tags, nil
}

func (s *Seeder) seedContent(ctx context.Context, users []*entities.User, tags []*entities.Tag) ([]*entities.Article, error) {
	var articles []*entities.Article
	var comments []*entities.Comment
	var breezemoons []*entities.Breezemoon
	var links []*entities.Link
	var tagLinks []*entities.TagUserLink

	for _, u := range users {
		for i := 0; i < articlesPerUser; i++ {
			anonymous := enums.AnonymousPublic
			if i%3 == 2 {
				anonymous = enums.AnonymousAnonymous
			}
			tag := tags[gofakeit.Number(0, len(tags)-1)]
			articles = append(articles, &entities.Article{
				ID:        ids.Next(),
				Title:     gofakeit.Sentence(gofakeit.Number(4, 10)),
				AuthorID:  u.ID,
				Anonymous: anonymous,
				Tags:      tag.Title,
				ViewCnt:   gofakeit.Number(0, 2000),
				Status:    enums.ContentStatusValid,
				Content:   gofakeit.Paragraph(2, 4, 20, "\n\n"),
			})
		}
		for i := 0; i < breezemoonsPerUser; i++ {
			breezemoons = append(breezemoons, &entities.Breezemoon{
				ID: ids.Next(), AuthorID: u.ID, Content: gofakeit.Sentence(12),
				Status: enums.ContentStatusValid, City: u.City,
			})
		}
		tag := tags[gofakeit.Number(0, len(tags)-1)]
		link := &entities.Link{ID: ids.Next(), Addr: gofakeit.URL(), Title: gofakeit.Sentence(4)}
		links = append(links, link)
		tagLinks = append(tagLinks, &entities.TagUserLink{ID: ids.Next(), TagID: tag.ID, UserID: u.ID, LinkID: link.ID})
	}

	for _, u := range users {
		for i := 0; i < commentsPerUser; i++ {
			article := articles[gofakeit.Number(0, len(articles)-1)]
			anonymous := enums.AnonymousPublic
			if i%4 == 3 {
				anonymous = enums.AnonymousAnonymous
			}
			comments = append(comments, &entities.Comment{
				ID: ids.Next(), ArticleID: article.ID, AuthorID: u.ID, Anonymous: anonymous,
				Content: gofakeit.Sentence(15), Status: enums.ContentStatusValid,
			})
			article.CommentCnt++
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(articles, 200).Error; err != nil {
			return fmt.Errorf("写入帖子失败: %w", err)
		}
		if err := tx.CreateInBatches(comments, 200).Error; err != nil {
			return fmt.Errorf("写入回帖失败: %w", err)
		}
		if err := tx.CreateInBatches(breezemoons, 200).Error; err != nil {
			return fmt.Errorf("写入清风明月失败: %w", err)
		}
		if err := tx.CreateInBatches(links, 200).Error; err != nil {
			return fmt.Errorf("写入链接失败: %w", err)
		}
		return tx.CreateInBatches(tagLinks, 200).Error
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("内容已生成",
		zap.Int("articles", len(articles)),
		zap.Int("comments", len(comments)),
		zap.Int("breezemoons", len(breezemoons)))
	return articles, nil
}

func (s *Seeder) seedFollows(ctx context.Context, users []*entities.User, tags []*entities.Tag, articles []*entities.Article) error {
	var follows []*entities.Follow
	seen := make(map[string]bool)
	add := func(follower, following string, typ enums.FollowingType) {
		key := fmt.Sprintf("%s|%s|%d", follower, following, typ)
		if follower == following || seen[key] {
			return
		}
		seen[key] = true
		follows = append(follows, &entities.Follow{ID: ids.Next(), FollowerID: follower, FollowingID: following, FollowingType: typ})
	}

	for _, u := range users {
		for i := 0; i < 5; i++ {
			add(u.ID, users[gofakeit.Number(0, len(users)-1)].ID, enums.FollowingUser)
			add(u.ID, articles[gofakeit.Number(0, len(articles)-1)].ID, enums.FollowingArticle)
			add(u.ID, articles[gofakeit.Number(0, len(articles)-1)].ID, enums.FollowingArticleWatch)
		}
		add(u.ID, tags[gofakeit.Number(0, len(tags)-1)].ID, enums.FollowingTag)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(follows, 200).Error; err != nil {
		return fmt.Errorf("写入关注关系失败: %w", err)
	}
	s.logger.Info("关注关系已生成", zap.Int("count", len(follows)))
	return nil
}

func (s *Seeder) seedPoints(ctx context.Context, users []*entities.User) error {
	now := time.Now().UnixMilli()
	for _, u := range users {
		if _, err := s.ledger.Transfer(ctx, constant.SYS, u.ID, enums.TransferTypeInit, initPoint, u.ID, now); err != nil {
			return fmt.Errorf("发放初始积分失败 (user=%s): %w", u.Name, err)
		}
	}
	for i := 0; i < len(users)*2; i++ {
		from := users[gofakeit.Number(0, len(users)-1)]
		to := users[gofakeit.Number(0, len(users)-1)]
		if from.ID == to.ID {
			continue
		}
		sum := gofakeit.Number(1, 50)
		if _, err := s.ledger.Transfer(ctx, from.ID, to.ID, enums.TransferTypeAccount2Account, sum, to.ID, now); err != nil {
			s.logger.Warn("生成转账流水失败", zap.String("from", from.Name), zap.String("to", to.Name), zap.Error(err))
		}
	}
	s.logger.Info("积分流水已生成")
	return nil
}
