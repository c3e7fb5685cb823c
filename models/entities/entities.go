package entities

// All 返回需要自动迁移的全部实体
func All() []any {
	return []any{
		&User{},
		&Role{},
		&Option{},
		&Emotion{},
		&Follow{},
		&Article{},
		&Comment{},
		&Tag{},
		&Breezemoon{},
		&Link{},
		&TagUserLink{},
		&Pointtransfer{},
		&Invitecode{},
		&Notification{},
	}
}
