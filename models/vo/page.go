package vo

// Page 是主页列表类查询的统一返回：当前页的行和总记录数。
// 页数由调用方根据每页条数计算，空结果的 RecordCount 为 0。
type Page[T any] struct {
	Rows        []T   `json:"rows"`
	RecordCount int64 `json:"recordCount"`
}

// FollowTarget 可被关注的列表行。主页组装器对这类行批量计算当前访问者是否已关注。
type FollowTarget interface {
	FollowTargetID() string
	SetIsFollowing(bool)
}

// Followable 嵌入到可关注的行中。匿名访问时 IsFollowing 为 nil，序列化时不输出该键。
type Followable struct {
	IsFollowing *bool `json:"isFollowing,omitempty"`
}

func (f *Followable) SetIsFollowing(following bool) {
	f.IsFollowing = &following
}
