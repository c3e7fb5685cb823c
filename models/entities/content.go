package entities

import "github.com/Xushengqwer/member_service/models/enums"

// Article 帖子（只读视图，写入由帖子服务负责）
type Article struct {
	ID         string              `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	Title      string              `gorm:"type:varchar(255);not null" json:"articleTitle"`
	AuthorID   string              `gorm:"type:varchar(19);not null;index:idx_article_author,priority:1" json:"articleAuthorId"`
	Anonymous  enums.Anonymous     `gorm:"not null;default:0;index:idx_article_author,priority:2" json:"articleAnonymous"`
	Tags       string              `gorm:"type:varchar(255)" json:"articleTags"`
	CommentCnt int                 `gorm:"not null;default:0" json:"articleCommentCount"`
	ViewCnt    int                 `gorm:"not null;default:0" json:"articleViewCount"`
	Status     enums.ContentStatus `gorm:"not null;default:0" json:"articleStatus"`
	Content    string              `gorm:"type:mediumtext" json:"articleContent"`
}

func (Article) TableName() string { return "symphony_article" }

// Comment 回帖
type Comment struct {
	ID        string              `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	ArticleID string              `gorm:"type:varchar(19);not null;index" json:"commentOnArticleId"`
	AuthorID  string              `gorm:"type:varchar(19);not null;index:idx_comment_author,priority:1" json:"commentAuthorId"`
	Anonymous enums.Anonymous     `gorm:"not null;default:0;index:idx_comment_author,priority:2" json:"commentAnonymous"`
	Content   string              `gorm:"type:text" json:"commentContent"`
	Status    enums.ContentStatus `gorm:"not null;default:0" json:"commentStatus"`
}

func (Comment) TableName() string { return "symphony_comment" }

// Tag 标签
type Tag struct {
	ID           string `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	Title        string `gorm:"type:varchar(64);not null;uniqueIndex" json:"tagTitle"`
	URI          string `gorm:"type:varchar(255)" json:"tagURI"`
	IconPath     string `gorm:"type:varchar(255)" json:"tagIconPath"`
	ReferenceCnt int    `gorm:"not null;default:0" json:"tagReferenceCount"`
	FollowerCnt  int    `gorm:"not null;default:0" json:"tagFollowerCount"`
}

func (Tag) TableName() string { return "symphony_tag" }

// Breezemoon 清风明月（短内容）
type Breezemoon struct {
	ID       string              `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	AuthorID string              `gorm:"type:varchar(19);not null;index" json:"breezemoonAuthorId"`
	Content  string              `gorm:"type:varchar(512)" json:"breezemoonContent"`
	Status   enums.ContentStatus `gorm:"not null;default:0" json:"breezemoonStatus"`
	City     string              `gorm:"type:varchar(64)" json:"breezemoonCity"`
}

func (Breezemoon) TableName() string { return "symphony_breezemoon" }

// Link 链接锻造中的外链
type Link struct {
	ID    string `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	Addr  string `gorm:"type:varchar(255);not null" json:"linkAddr"`
	Title string `gorm:"type:varchar(255)" json:"linkTitle"`
}

func (Link) TableName() string { return "symphony_link" }

// TagUserLink 用户在某标签下锻造的链接
type TagUserLink struct {
	ID     string `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	TagID  string `gorm:"type:varchar(19);not null;index" json:"tagId"`
	UserID string `gorm:"type:varchar(19);not null;index" json:"userId"`
	LinkID string `gorm:"type:varchar(19);not null" json:"linkId"`
}

func (TagUserLink) TableName() string { return "symphony_tag_user_link" }
