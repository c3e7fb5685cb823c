package controller

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/middleware"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/pagination"
	"github.com/Xushengqwer/member_service/render"
	"github.com/Xushengqwer/member_service/service"
)

// HomeController 成员主页 /member/{userName}/...
type HomeController struct {
	homeSvc   service.HomeService
	notifySvc service.NotificationMgmtService
	logger    *zap.Logger

	home, comments, commentsAnonymous, articlesAnonymous *service.HomeRoute
	followingUsers, followingTags, followingArticles     *service.HomeRoute
	watchingArticles, followers, points, breezemoons     *service.HomeRoute
	linkForge                                            *service.HomeRoute
}

func followingKind(k enums.FollowingType) *enums.FollowingType { return &k }

// NewHomeController 构建各页面的路由描述符
func NewHomeController(
	homeSvc service.HomeService,
	articleSvc service.ArticleQueryService,
	commentSvc service.CommentQueryService,
	followSvc service.FollowQueryService,
	pointSvc service.PointtransferQueryService,
	breezemoonSvc service.BreezemoonQueryService,
	linkForgeSvc service.LinkForgeQueryService,
	notifySvc service.NotificationMgmtService,
	logger *zap.Logger,
) *HomeController {
	ctrl := &HomeController{homeSvc: homeSvc, notifySvc: notifySvc, logger: logger}

	articles := func(anonymous enums.Anonymous) service.HomeFetchFunc {
		return service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.ArticleRow], error) {
			return articleSvc.GetUserArticles(ctx, q.AvatarViewMode, q.Profile.ID, anonymous, q.Page, q.PageSize)
		})
	}
	comments := func(anonymous enums.Anonymous) service.HomeFetchFunc {
		return service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.CommentRow], error) {
			return commentSvc.GetUserComments(ctx, q.AvatarViewMode, q.Profile.ID, anonymous, q.Page, q.PageSize, q.Viewer)
		})
	}

	ctrl.home = &service.HomeRoute{
		Template: "/home/home.ftl", Type: "home", RowsKey: "userHomeArticles",
		SizeKey: "userHomeArticlesCnt", WindowKey: "userHomeArticlesWindowSize",
		SetIsMyArticle: true,
		Fetch:          articles(enums.AnonymousPublic),
	}
	ctrl.articlesAnonymous = &service.HomeRoute{
		Template: "/home/home.ftl", Type: "articlesAnonymous", RowsKey: "userHomeArticles",
		SizeKey: "userHomeArticlesCnt", WindowKey: "userHomeArticlesWindowSize",
		OwnerOrAdminOnly: true, SetIsMyArticle: true,
		Fetch: articles(enums.AnonymousAnonymous),
	}
	ctrl.comments = &service.HomeRoute{
		Template: "/home/comments.ftl", Type: "comments", RowsKey: "userHomeComments",
		SizeKey: "userHomeCmtsCnt", WindowKey: "userHomeCmtsWindowSize",
		Fetch: comments(enums.AnonymousPublic),
	}
	ctrl.commentsAnonymous = &service.HomeRoute{
		Template: "/home/comments.ftl", Type: "commentsAnonymous", RowsKey: "userHomeComments",
		SizeKey: "userHomeCmtsCnt", WindowKey: "userHomeCmtsWindowSize",
		OwnerOrAdminOnly: true,
		Fetch:            comments(enums.AnonymousAnonymous),
	}
	ctrl.followingUsers = &service.HomeRoute{
		Template: "/home/following-users.ftl", Type: "followingUsers", RowsKey: "userHomeFollowingUsers",
		SizeKey: "userHomeFollowingUsersCnt", WindowKey: "userHomeFollowingUsersWindowSize",
		FollowingType: followingKind(enums.FollowingUser),
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.UserRow], error) {
			return followSvc.GetFollowingUsers(ctx, q.AvatarViewMode, q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	ctrl.followingTags = &service.HomeRoute{
		Template: "/home/following-tags.ftl", Type: "followingTags", RowsKey: "userHomeFollowingTags",
		SizeKey: "userHomeFollowingTagsCnt", WindowKey: "userHomeFollowingTagsWindowSize",
		FollowingType: followingKind(enums.FollowingTag),
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.TagRow], error) {
			return followSvc.GetFollowingTags(ctx, q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	ctrl.followingArticles = &service.HomeRoute{
		Template: "/home/following-articles.ftl", Type: "followingArticles", RowsKey: "userHomeFollowingArticles",
		SizeKey: "userHomeFollowingArticlesCnt", WindowKey: "userHomeFollowingArticlesWindowSize",
		FollowingType: followingKind(enums.FollowingArticle),
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.FollowingArticleRow], error) {
			return followSvc.GetFollowingArticles(ctx, q.AvatarViewMode, q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	// 关注帖子页沿用收藏帖子的分页配置与行键
	ctrl.watchingArticles = &service.HomeRoute{
		Template: "/home/watching-articles.ftl", Type: "watchingArticles", RowsKey: "userHomeFollowingArticles",
		SizeKey: "userHomeFollowingArticlesCnt", WindowKey: "userHomeFollowingArticlesWindowSize",
		FollowingType: followingKind(enums.FollowingArticleWatch),
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.FollowingArticleRow], error) {
			return followSvc.GetWatchingArticles(ctx, q.AvatarViewMode, q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	ctrl.followers = &service.HomeRoute{
		Template: "/home/followers.ftl", Type: "followers", RowsKey: "userHomeFollowerUsers",
		SizeKey: "userHomeFollowersCnt", WindowKey: "userHomeFollowersWindowSize",
		FollowingType: followingKind(enums.FollowingUser),
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.UserRow], error) {
			return followSvc.GetFollowerUsers(ctx, q.AvatarViewMode, q.Profile.ID, q.Page, q.PageSize)
		}),
		After: ctrl.markNewFollowersRead,
	}
	ctrl.points = &service.HomeRoute{
		Template: "/home/points.ftl", Type: "points", RowsKey: "userHomePoints",
		SizeKey: "userHomePointsCnt", WindowKey: "userHomePointsWindowSize",
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.PointRow], error) {
			return pointSvc.GetUserPoints(ctx, q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	ctrl.breezemoons = &service.HomeRoute{
		Template: "/home/breezemoons.ftl", Type: "breezemoons", RowsKey: "userHomeBreezemoons",
		SizeKey: "userHomeBreezemoonsCnt", WindowKey: "userHomeBreezemoonsWindowSize",
		Fetch: service.PageFetch(func(ctx context.Context, q service.HomeQuery) (vo.Page[*vo.BreezemoonRow], error) {
			return breezemoonSvc.GetBreezemoons(ctx, q.AvatarViewMode, q.ViewerID(), q.Profile.ID, q.Page, q.PageSize)
		}),
	}
	ctrl.linkForge = &service.HomeRoute{
		Template: "/home/link-forge.ftl", Type: "linkForge", RowsKey: "tags",
		Fetch: func(ctx context.Context, q service.HomeQuery) (service.HomeRows, error) {
			tags, err := linkForgeSvc.GetUserForgedLinks(ctx, q.Profile.ID)
			if err != nil {
				return service.HomeRows{}, err
			}
			return service.HomeRows{Rows: tags}, nil
		},
	}
	return ctrl
}

// markNewFollowersRead 主页所属用户查看自己的粉丝列表时，清除新粉丝通知
func (ctrl *HomeController) markNewFollowersRead(ctx context.Context, q service.HomeQuery, _ map[string]any) {
	if q.Viewer == nil || q.Viewer.ID != q.Profile.ID {
		return
	}
	if err := ctrl.notifySvc.MakeRead(ctx, q.Profile.ID, enums.NotificationNewFollower); err != nil {
		ctrl.logger.Error("标记新粉丝通知已读失败", zap.String("userID", q.Profile.ID), zap.Error(err))
	}
}

// serve 是所有主页 handler 的公共流程：组装数据模型并交给 RenderPage 渲染
func (ctrl *HomeController) serve(c *gin.Context, route *service.HomeRoute) {
	q := service.HomeQuery{
		AvatarViewMode: middleware.AvatarViewModeFrom(c),
		Profile:        middleware.ProfileUserFrom(c),
		Viewer:         middleware.ViewerFrom(c),
		Page:           pagination.GetPage(c),
	}
	if q.Profile == nil {
		middleware.SetPage(c, render.NotFoundPage())
		return
	}

	dataModel, err := ctrl.homeSvc.ShowHome(c.Request.Context(), route, q)
	if err != nil {
		if !errors.Is(err, service.ErrHomeForbidden) {
			ctrl.logger.Error("组装主页失败",
				zap.String("type", route.Type),
				zap.String("userName", q.Profile.Name),
				zap.Error(err))
		}
		middleware.SetPage(c, render.NotFoundPage())
		return
	}
	middleware.SetPage(c, render.NewPage(route.Template, dataModel))
}

// ShowHome 成员主页（公开帖子）
// @Summary      成员主页
// @Description  分页展示用户的公开帖子。页面为 HTML。
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码 (从1开始)" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Failure      404 {string} string "用户不存在或已被封禁"
// @Router       /member/{userName} [get]
func (ctrl *HomeController) ShowHome(c *gin.Context) { ctrl.serve(c, ctrl.home) }

// ShowHomeComments 成员回帖
// @Summary      成员回帖
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Failure      404 {string} string "用户不存在或已被封禁"
// @Router       /member/{userName}/comments [get]
func (ctrl *HomeController) ShowHomeComments(c *gin.Context) { ctrl.serve(c, ctrl.comments) }

// ShowHomeAnonymousComments 匿名回帖，仅本人或管理员可见
// @Summary      成员匿名回帖
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Failure      404 {string} string "用户不存在，或访问者不是本人/管理员"
// @Router       /member/{userName}/comments/anonymous [get]
func (ctrl *HomeController) ShowHomeAnonymousComments(c *gin.Context) {
	ctrl.serve(c, ctrl.commentsAnonymous)
}

// ShowAnonymousArticles 匿名帖子，仅本人或管理员可见
// @Summary      成员匿名帖子
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Failure      404 {string} string "用户不存在，或访问者不是本人/管理员"
// @Router       /member/{userName}/articles/anonymous [get]
func (ctrl *HomeController) ShowAnonymousArticles(c *gin.Context) {
	ctrl.serve(c, ctrl.articlesAnonymous)
}

// ShowHomeFollowingUsers 关注的用户
// @Summary      成员关注的用户
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/following/users [get]
func (ctrl *HomeController) ShowHomeFollowingUsers(c *gin.Context) {
	ctrl.serve(c, ctrl.followingUsers)
}

// ShowHomeFollowingTags 关注的标签
// @Summary      成员关注的标签
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/following/tags [get]
func (ctrl *HomeController) ShowHomeFollowingTags(c *gin.Context) {
	ctrl.serve(c, ctrl.followingTags)
}

// ShowHomeFollowingArticles 收藏的帖子
// @Summary      成员收藏的帖子
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/following/articles [get]
func (ctrl *HomeController) ShowHomeFollowingArticles(c *gin.Context) {
	ctrl.serve(c, ctrl.followingArticles)
}

// ShowHomeWatchingArticles 关注的帖子
// @Summary      成员关注的帖子
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/watching/articles [get]
func (ctrl *HomeController) ShowHomeWatchingArticles(c *gin.Context) {
	ctrl.serve(c, ctrl.watchingArticles)
}

// ShowHomeFollowers 粉丝
// @Summary      成员粉丝
// @Description  本人查看时会把新粉丝通知标记为已读。
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/followers [get]
func (ctrl *HomeController) ShowHomeFollowers(c *gin.Context) { ctrl.serve(c, ctrl.followers) }

// ShowHomePoints 积分明细
// @Summary      成员积分明细
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/points [get]
func (ctrl *HomeController) ShowHomePoints(c *gin.Context) { ctrl.serve(c, ctrl.points) }

// ShowHomeBreezemoons 清风明月
// @Summary      成员清风明月
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Param        p query int false "页码" minimum(1) default(1)
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/breezemoons [get]
func (ctrl *HomeController) ShowHomeBreezemoons(c *gin.Context) {
	ctrl.serve(c, ctrl.breezemoons)
}

// ShowLinkForge 链接锻造
// @Summary      成员链接锻造
// @Description  一次性展示用户锻造过链接的标签，不分页。
// @Tags         member (成员主页)
// @Produce      html
// @Param        userName path string true "用户名"
// @Success      200 {string} string "HTML 页面"
// @Router       /member/{userName}/forge/link [get]
func (ctrl *HomeController) ShowLinkForge(c *gin.Context) { ctrl.serve(c, ctrl.linkForge) }
