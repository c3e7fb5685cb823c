package vo

import (
	"time"

	"github.com/Xushengqwer/member_service/models/enums"
)

// ArticleRow 主页帖子列表中的一行
type ArticleRow struct {
	OID                   string          `json:"oId"`
	ArticleTitle          string          `json:"articleTitle"`
	ArticleTags           string          `json:"articleTags"`
	ArticleCommentCount   int             `json:"articleCommentCount"`
	ArticleViewCount      int             `json:"articleViewCount"`
	ArticleAnonymous      enums.Anonymous `json:"articleAnonymous"`
	ArticleAuthorName     string          `json:"articleAuthorName"`
	ArticleAuthorThumbURL string          `json:"articleAuthorThumbnailURL"`
	ArticleCreateTime     time.Time       `json:"articleCreateTime"`
}

// FollowingArticleRow 关注 / 收藏帖子列表中的一行
type FollowingArticleRow struct {
	Followable
	ArticleRow
}

func (r *FollowingArticleRow) FollowTargetID() string { return r.OID }

// CommentRow 主页回帖列表中的一行
type CommentRow struct {
	OID                   string          `json:"oId"`
	CommentContent        string          `json:"commentContent"`
	CommentAnonymous      enums.Anonymous `json:"commentAnonymous"`
	CommentArticleID      string          `json:"commentOnArticleId"`
	CommentArticleTitle   string          `json:"commentArticleTitle"`
	CommentAuthorName     string          `json:"commentAuthorName"`
	CommentAuthorThumbURL string          `json:"commentAuthorThumbnailURL"`
	CommentCreateTime     time.Time       `json:"commentCreateTime"`
}

// TagRow 关注标签列表中的一行
type TagRow struct {
	Followable
	OID               string `json:"oId"`
	TagTitle          string `json:"tagTitle"`
	TagURI            string `json:"tagURI"`
	TagIconPath       string `json:"tagIconPath"`
	TagReferenceCount int    `json:"tagReferenceCount"`
	TagFollowerCount  int    `json:"tagFollowerCount"`
}

func (r *TagRow) FollowTargetID() string { return r.OID }

// PointRow 积分明细中的一行
type PointRow struct {
	OID         string                  `json:"oId"`
	Type        enums.PointtransferType `json:"type"`
	Sum         int                     `json:"sum"`
	Balance     int                     `json:"balance"`
	DisplayType enums.DisplayType       `json:"displayType"`
	Description string                  `json:"description"`
	Time        time.Time               `json:"time"`
}

// BreezemoonRow 清风明月列表中的一行
type BreezemoonRow struct {
	OID                      string    `json:"oId"`
	BreezemoonContent        string    `json:"breezemoonContent"`
	BreezemoonAuthorName     string    `json:"breezemoonAuthorName"`
	BreezemoonAuthorThumbURL string    `json:"breezemoonAuthorThumbnailURL48"`
	BreezemoonCity           string    `json:"breezemoonCity"`
	BreezemoonCreateTime     time.Time `json:"breezemoonCreateTime"`
	// BreezemoonMine 当前访问者是否为作者
	BreezemoonMine bool `json:"breezemoonMine"`
}

// ForgeTag 链接锻造中的一个标签及其链接
type ForgeTag struct {
	OID         string    `json:"oId"`
	TagTitle    string    `json:"tagTitle"`
	TagURI      string    `json:"tagURI"`
	TagIconPath string    `json:"tagIconPath"`
	TagLinks    []LinkRow `json:"tagLinks"`
}

type LinkRow struct {
	OID       string `json:"oId"`
	LinkAddr  string `json:"linkAddr"`
	LinkTitle string `json:"linkTitle"`
}
