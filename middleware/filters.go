package middleware

import (
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/render"
	"github.com/Xushengqwer/member_service/service"
)

// Filters 持有过滤器依赖，各方法返回 gin 中间件
type Filters struct {
	site       config.SiteConfig
	sessionSvc service.SessionService
	userSvc    service.UserQueryService
	roleSvc    service.RoleQueryService
	langSvc    lang.LangPropsService
	renderer   render.Renderer
	logger     *zap.Logger
}

func NewFilters(
	site config.SiteConfig,
	sessionSvc service.SessionService,
	userSvc service.UserQueryService,
	roleSvc service.RoleQueryService,
	langSvc lang.LangPropsService,
	renderer render.Renderer,
	logger *zap.Logger,
) *Filters {
	return &Filters{
		site:       site,
		sessionSvc: sessionSvc,
		userSvc:    userSvc,
		roleSvc:    roleSvc,
		langSvc:    langSvc,
		renderer:   renderer,
		logger:     logger,
	}
}
