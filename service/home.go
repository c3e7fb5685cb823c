package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/pagination"
)

// ErrHomeForbidden 访问者无权查看该主页页面，调用方按 404 处理
var ErrHomeForbidden = errors.New("无权查看该页面")

// HomeQuery 一次主页读取的上下文
type HomeQuery struct {
	AvatarViewMode enums.AvatarViewMode
	Profile        *entities.User
	// Viewer 为 nil 表示匿名访客
	Viewer *entities.User
	Page   int
	// PageSize 与 WindowSize 由组装器根据路由配置填入
	PageSize   int
	WindowSize int
}

// ViewerID 匿名访客返回 ""
func (q HomeQuery) ViewerID() string {
	if q.Viewer == nil {
		return ""
	}
	return q.Viewer.ID
}

// HomeRows 是各页面查询结果的统一形式
type HomeRows struct {
	Rows        any
	RecordCount int64
	// Followables 需要计算 isFollowing 的行
	Followables []vo.FollowTarget
}

// HomeFetchFunc 读取页面主体数据
type HomeFetchFunc func(ctx context.Context, q HomeQuery) (HomeRows, error)

// PageFetch 把返回 vo.Page 的查询适配为 HomeFetchFunc，实现了 vo.FollowTarget 的行会被收集起来
func PageFetch[T any](fetch func(ctx context.Context, q HomeQuery) (vo.Page[T], error)) HomeFetchFunc {
	return func(ctx context.Context, q HomeQuery) (HomeRows, error) {
		page, err := fetch(ctx, q)
		if err != nil {
			return HomeRows{}, err
		}
		rows := page.Rows
		if rows == nil {
			rows = []T{}
		}
		var followables []vo.FollowTarget
		for _, r := range rows {
			if f, ok := any(r).(vo.FollowTarget); ok {
				followables = append(followables, f)
			}
		}
		return HomeRows{Rows: rows, RecordCount: page.RecordCount, Followables: followables}, nil
	}
}

// HomeRoute 描述一个 /member/{userName}/... 页面
type HomeRoute struct {
	Template string
	// Type 写入数据模型的 type 键，模板据此切换标签页
	Type    string
	RowsKey string
	// SizeKey 为空表示该页面不分页
	SizeKey   string
	WindowKey string
	// FollowingType 非 nil 时，为登录访问者计算每一行的 isFollowing
	FollowingType *enums.FollowingType
	// OwnerOrAdminOnly 只允许主页所属用户本人或管理员访问
	OwnerOrAdminOnly bool
	SetIsMyArticle   bool
	Fetch            HomeFetchFunc
	// After 在数据模型组装完成后执行
	After func(ctx context.Context, q HomeQuery, dataModel map[string]any)
}

// HomeService 主页组装器
type HomeService interface {
	// ShowHome 组装页面数据模型。访问受限时返回 ErrHomeForbidden。
	ShowHome(ctx context.Context, route *HomeRoute, q HomeQuery) (map[string]any, error)
}

type homeService struct {
	homeCfg      config.HomeConfig
	dataModelSvc DataModelService
	roleSvc      RoleQueryService
	avatarSvc    AvatarQueryService
	followSvc    FollowQueryService
	logger       *zap.Logger
}

func NewHomeService(
	homeCfg config.HomeConfig,
	dataModelSvc DataModelService,
	roleSvc RoleQueryService,
	avatarSvc AvatarQueryService,
	followSvc FollowQueryService,
	logger *zap.Logger,
) HomeService {
	return &homeService{
		homeCfg:      homeCfg,
		dataModelSvc: dataModelSvc,
		roleSvc:      roleSvc,
		avatarSvc:    avatarSvc,
		followSvc:    followSvc,
		logger:       logger,
	}
}

func (s *homeService) ShowHome(ctx context.Context, route *HomeRoute, q HomeQuery) (map[string]any, error) {
	profile := q.Profile
	viewer := q.Viewer
	if route.OwnerOrAdminOnly {
		if viewer == nil || (viewer.ID != profile.ID && viewer.Role != constant.RoleAdmin) {
			return nil, ErrHomeForbidden
		}
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if route.SizeKey != "" {
		q.PageSize = s.homeCfg.Lookup(route.SizeKey)
		q.WindowSize = s.homeCfg.Lookup(route.WindowKey)
	}

	dataModel := map[string]any{}
	s.dataModelSvc.FillHeaderAndFooter(ctx, dataModel, viewer, q.AvatarViewMode)

	if err := s.fillHomeUser(ctx, dataModel, q); err != nil {
		return nil, err
	}
	dataModel["followingId"] = profile.ID
	if viewer != nil {
		following, err := s.followSvc.IsFollowing(ctx, viewer.ID, profile.ID, enums.FollowingUser)
		if err != nil {
			return nil, fmt.Errorf("查询关注状态失败: %w", err)
		}
		dataModel["isFollowing"] = following
	}
	dataModel["userCreateTime"] = createTimeOf(profile.ID)

	result, err := route.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if viewer != nil && route.FollowingType != nil && len(result.Followables) > 0 {
		if err := s.fillIsFollowing(ctx, viewer.ID, *route.FollowingType, result.Followables); err != nil {
			return nil, err
		}
	}
	dataModel[route.RowsKey] = result.Rows

	if route.SizeKey != "" {
		fillPagination(dataModel, q.Page, q.PageSize, q.WindowSize, result.RecordCount)
	}

	dataModel["type"] = route.Type
	if route.SetIsMyArticle {
		dataModel["isMyArticle"] = viewer != nil && viewer.Name == profile.Name
	}

	if route.After != nil {
		route.After(ctx, q, dataModel)
	}
	return dataModel, nil
}

func (s *homeService) fillHomeUser(ctx context.Context, dataModel map[string]any, q HomeQuery) error {
	homeUser := vo.NewHomeUser(q.Profile)
	role, err := s.roleSvc.GetRole(ctx, q.Profile.Role)
	if err != nil {
		return fmt.Errorf("查询用户角色失败: %w", err)
	}
	if role != nil {
		homeUser.RoleName = role.Name
	}
	s.avatarSvc.FillUserAvatarURL(q.AvatarViewMode, homeUser, q.Profile)
	homeUser.UserCreateTime = createTimeOf(q.Profile.ID)
	homeUser.Escape()
	dataModel["user"] = homeUser
	return nil
}

func (s *homeService) fillIsFollowing(ctx context.Context, viewerID string, kind enums.FollowingType, rows []vo.FollowTarget) error {
	targetIDs := make([]string, 0, len(rows))
	for _, r := range rows {
		targetIDs = append(targetIDs, r.FollowTargetID())
	}
	following, err := s.followSvc.IsFollowingAll(ctx, viewerID, targetIDs, kind)
	if err != nil {
		return fmt.Errorf("批量查询关注状态失败: %w", err)
	}
	for _, r := range rows {
		r.SetIsFollowing(following[r.FollowTargetID()])
	}
	return nil
}

func fillPagination(dataModel map[string]any, page, pageSize, windowSize int, recordCount int64) {
	pageCount := pagination.PageCountOf(recordCount, pageSize)
	pageNums := pagination.Paginate(page, pageSize, pageCount, windowSize)
	if len(pageNums) > 0 {
		dataModel["paginationFirstPageNum"] = pageNums[0]
		dataModel["paginationLastPageNum"] = pageNums[len(pageNums)-1]
	}
	dataModel["paginationCurrentPageNum"] = page
	dataModel["paginationPageCount"] = pageCount
	dataModel["paginationPageNums"] = pageNums
	dataModel["paginationRecordCount"] = recordCount
}
