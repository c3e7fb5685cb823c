package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/repo/mysql"
	"github.com/Xushengqwer/member_service/repo/redis"
)

// 会话默认有效期
const defaultSessionTTL = 7 * 24 * time.Hour

// SessionService 会话与 CSRF 令牌。
// 会话令牌是 HS256 签名的 JWT，jti 为会话 ID，sub 为用户 ID；会话 ID 同时登记在 Redis 中，删除即可吊销。
type SessionService interface {
	// Login 为用户签发会话令牌
	Login(ctx context.Context, userID string) (string, error)

	// CurrentUser 解析令牌并返回会话对应的有效用户与会话 ID
	CurrentUser(ctx context.Context, token string) (*entities.User, string, error)

	// Logout 吊销令牌对应的会话
	Logout(ctx context.Context, token string) error

	// CSRFToken 返回会话的 CSRF 令牌，不存在时创建
	CSRFToken(ctx context.Context, sid string) (string, error)

	// CheckCSRF 校验提交的 CSRF 令牌
	CheckCSRF(ctx context.Context, sid, token string) error

	// CookieName 会话 Cookie 名
	CookieName() string
}

type sessionService struct {
	cfg         config.SessionConfig
	ttl         time.Duration
	sessionRepo redis.SessionRepository
	csrfRepo    redis.CSRFTokenRepository
	userRepo    mysql.UserRepository
	logger      *zap.Logger
}

func NewSessionService(cfg config.SessionConfig, sessionRepo redis.SessionRepository, csrfRepo redis.CSRFTokenRepository, userRepo mysql.UserRepository, logger *zap.Logger) SessionService {
	ttl := defaultSessionTTL
	if cfg.TTLHours > 0 {
		ttl = time.Duration(cfg.TTLHours) * time.Hour
	}
	return &sessionService{
		cfg:         cfg,
		ttl:         ttl,
		sessionRepo: sessionRepo,
		csrfRepo:    csrfRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *sessionService) CookieName() string {
	return s.cfg.CookieName
}

func (s *sessionService) Login(ctx context.Context, userID string) (string, error) {
	sid := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		Issuer:    constant.ServiceName,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("签发会话令牌失败: %w", err)
	}
	if err := s.sessionRepo.SaveSession(ctx, sid, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *sessionService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, myErrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *sessionService) CurrentUser(ctx context.Context, token string) (*entities.User, string, error) {
	if token == "" {
		return nil, "", myErrors.ErrSessionNotFound
	}
	claims, err := s.parse(token)
	if err != nil {
		return nil, "", err
	}
	userID, err := s.sessionRepo.GetSessionUserID(ctx, claims.ID)
	if err != nil {
		return nil, "", err
	}
	if userID != claims.Subject {
		return nil, "", myErrors.ErrInvalidToken
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("查询会话用户失败: %w", err)
	}
	if user.Status != enums.UserStatusValid {
		return nil, "", myErrors.ErrUserBlocked
	}
	return user, claims.ID, nil
}

func (s *sessionService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	return s.sessionRepo.DeleteSession(ctx, claims.ID)
}

func (s *sessionService) CSRFToken(ctx context.Context, sid string) (string, error) {
	return s.csrfRepo.GetOrCreateToken(ctx, sid, uuid.NewString(), constant.CSRFTokenTTL)
}

func (s *sessionService) CheckCSRF(ctx context.Context, sid, token string) error {
	if sid == "" || token == "" {
		return myErrors.ErrCSRFMismatch
	}
	expected, err := s.csrfRepo.GetToken(ctx, sid)
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			return myErrors.ErrCSRFMismatch
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) != 1 {
		return myErrors.ErrCSRFMismatch
	}
	return nil
}
