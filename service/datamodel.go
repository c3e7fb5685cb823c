package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
)

// DataModelService 填充所有页面共用的数据
type DataModelService interface {
	// FillHeaderAndFooter 写入页头页脚需要的键，viewer 为 nil 表示匿名访客
	FillHeaderAndFooter(ctx context.Context, dataModel map[string]any, viewer *entities.User, mode enums.AvatarViewMode)
}

type dataModelService struct {
	site      config.SiteConfig
	avatarSvc AvatarQueryService
}

func NewDataModelService(site config.SiteConfig, avatarSvc AvatarQueryService) DataModelService {
	return &dataModelService{site: site, avatarSvc: avatarSvc}
}

func (s *dataModelService) FillHeaderAndFooter(_ context.Context, dataModel map[string]any, viewer *entities.User, mode enums.AvatarViewMode) {
	dataModel["servePath"] = s.site.ServePath
	dataModel["staticServePath"] = s.site.StaticServePath
	dataModel["siteName"] = s.site.SiteName
	dataModel["year"] = time.Now().Year()
	dataModel["userAvatarViewMode"] = mode

	dataModel["isLoggedIn"] = viewer != nil
	if viewer == nil {
		return
	}
	dataModel["currentUser"] = &vo.CurrentUser{
		OID:           viewer.ID,
		UserName:      vo.EscapeHTML(viewer.Name),
		UserAvatarURL: s.avatarSvc.GetAvatarURLByUser(mode, viewer, "48"),
		UserRole:      viewer.Role,
		UserPoint:     viewer.Point,
	}
}
