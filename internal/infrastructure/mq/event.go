package mq

import (
	"encoding/json"
	"time"

	"edulink_server/pkg/util/snowflake"
)

// 好友关系事件类型
const (
	EventRequestSent      = "request_sent"
	EventRequestAccepted  = "request_accepted"
	EventRequestRejected  = "request_rejected"
	EventRequestCancelled = "request_cancelled"
	EventFriendRemoved    = "friend_removed"
)

// FriendEvent 好友关系变更事件
// 投递给通知/消息等下游系统消费，本服务只负责发布
type FriendEvent struct {
	// EventId 事件唯一标识，snowflake生成
	EventId string `json:"event_id"`
	// Type 事件类型，见上方常量
	Type string `json:"type"`
	// RequestId 关联的申请记录UUID，friend_removed 事件为空
	RequestId string `json:"request_id,omitempty"`
	// ActorId 触发事件的用户ID
	ActorId string `json:"actor_id"`
	// TargetId 事件另一方的用户ID
	TargetId string `json:"target_id"`
	// Note 申请附言，仅 request_sent 事件携带
	Note string `json:"note,omitempty"`
	// Timestamp 事件产生时间，毫秒时间戳
	Timestamp int64 `json:"timestamp"`
}

// NewFriendEvent 构造一个事件，自动填充事件ID和时间戳
func NewFriendEvent(eventType, requestId, actorId, targetId, note string) *FriendEvent {
	return &FriendEvent{
		EventId:   snowflake.GenerateIDString(),
		Type:      eventType,
		RequestId: requestId,
		ActorId:   actorId,
		TargetId:  targetId,
		Note:      note,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Marshal 序列化为 JSON bytes
func (e *FriendEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
