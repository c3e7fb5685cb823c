// Package events 定义成员服务生产与消费的 Kafka 事件
package events

import "time"

// NotificationCreatedEvent 新通知事件，推送服务据此向在线用户推送提醒
type NotificationCreatedEvent struct {
	EventID        string    `json:"event_id"`
	Timestamp      time.Time `json:"timestamp"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	DataID         string    `json:"data_id"`
	DataType       int       `json:"data_type"`
}

// NotificationReadEvent 某类通知被批量置为已读
type NotificationReadEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	DataType  int       `json:"data_type"`
	Count     int64     `json:"count"`
}

// UserRegisteredEvent 由注册服务发布
type UserRegisteredEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	// Invitecode 使用邀请码注册时不为空
	Invitecode string `json:"invitecode,omitempty"`
}

// InvitecodeUsedEvent 由注册服务在邀请码被使用后发布
type InvitecodeUsedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Code      string    `json:"code"`
	UserID    string    `json:"user_id"`
}
