package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

func TestCommentQueryService_AnonymousNames(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCommentQueryService(env.contentRepo, env.userRepo, env.avatarSvc, "某人", env.logger)
	ctx := context.Background()

	alice := env.createUser(t, "alice", 0)
	bob := env.createUser(t, "bob", 0)
	admin := env.createUser(t, "root", 0, withRole(constant.RoleAdmin))
	article := env.createArticle(t, bob, "hello", enums.AnonymousPublic)
	env.createComment(t, alice, article, "hidden", enums.AnonymousAnonymous)

	cases := []struct {
		name   string
		viewer *entities.User
		want   string
	}{
		{"anonymous visitor", nil, "某人"},
		{"other member", bob, "某人"},
		{"owner", alice, "alice"},
		{"admin", admin, "alice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := svc.GetUserComments(ctx, enums.AvatarViewModeOriginal, alice.ID, enums.AnonymousAnonymous, 1, 10, tc.viewer)
			require.NoError(t, err)
			require.Len(t, page.Rows, 1)
			assert.Equal(t, tc.want, page.Rows[0].CommentAuthorName)
			assert.Equal(t, "hello", page.Rows[0].CommentArticleTitle)
		})
	}

	public, err := svc.GetUserComments(ctx, enums.AvatarViewModeOriginal, alice.ID, enums.AnonymousPublic, 1, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, public.Rows)
	assert.Zero(t, public.RecordCount)
}

func TestBreezemoonQueryService_Mine(t *testing.T) {
	env := newTestEnv(t)
	svc := NewBreezemoonQueryService(env.contentRepo, env.userRepo, env.avatarSvc, env.logger)
	ctx := context.Background()

	alice := env.createUser(t, "alice", 0)
	require.NoError(t, env.db.Create(&entities.Breezemoon{ID: ids.Next(), AuthorID: alice.ID, Content: "moon", City: "杭州"}).Error)
	require.NoError(t, env.db.Create(&entities.Breezemoon{ID: ids.Next(), AuthorID: alice.ID, Content: "gone", Status: enums.ContentStatusInvalid}).Error)

	page, err := svc.GetBreezemoons(ctx, enums.AvatarViewModeOriginal, alice.ID, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.True(t, page.Rows[0].BreezemoonMine)
	assert.Equal(t, "alice", page.Rows[0].BreezemoonAuthorName)

	page, err = svc.GetBreezemoons(ctx, enums.AvatarViewModeOriginal, "", alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.False(t, page.Rows[0].BreezemoonMine)
}

func TestLinkForgeQueryService_GroupsByTag(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLinkForgeQueryService(env.contentRepo, env.logger)
	ctx := context.Background()

	alice := env.createUser(t, "alice", 0)
	tag := &entities.Tag{ID: ids.Next(), Title: "Go", URI: "/tag/Go"}
	require.NoError(t, env.db.Create(tag).Error)
	for i := 0; i < 12; i++ {
		link := &entities.Link{ID: ids.Next(), Addr: "https://example.com", Title: "link"}
		require.NoError(t, env.db.Create(link).Error)
		require.NoError(t, env.db.Create(&entities.TagUserLink{ID: ids.Next(), TagID: tag.ID, UserID: alice.ID, LinkID: link.ID}).Error)
	}

	tags, err := svc.GetUserForgedLinks(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Go", tags[0].TagTitle)
	assert.Len(t, tags[0].TagLinks, 10)

	none, err := svc.GetUserForgedLinks(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
