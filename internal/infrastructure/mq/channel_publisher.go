package mq

import (
	"edulink_server/pkg/constants"

	"go.uber.org/zap"
)

// channelPublisher 基于内存channel的事件发布实现
// 单机部署或本地开发时使用，不依赖外部kafka
type channelPublisher struct {
	events chan *FriendEvent
}

// NewChannelPublisher 初始化channel发布端
func NewChannelPublisher() EventPublisher {
	return &channelPublisher{
		events: make(chan *FriendEvent, constants.CHANNEL_SIZE),
	}
}

// PublishFriendEvent 实现 EventPublisher 接口
// channel满时丢弃并告警，事件只作通知用途，不影响主流程
func (c *channelPublisher) PublishFriendEvent(event *FriendEvent) error {
	select {
	case c.events <- event:
	default:
		zap.L().Warn("friend event channel is full, drop event",
			zap.String("event_id", event.EventId),
			zap.String("type", event.Type))
	}
	return nil
}

// Events 暴露事件channel供进程内消费者订阅
func (c *channelPublisher) Events() <-chan *FriendEvent {
	return c.events
}

func (c *channelPublisher) Close() error {
	close(c.events)
	return nil
}
