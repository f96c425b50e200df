package mq

// EventPublisher 好友事件发布接口
// 用于解耦 Service 层和 MQ 层的依赖关系
// Service 层只需知道"有个东西能发事件"，不需要知道具体实现
type EventPublisher interface {
	// PublishFriendEvent 发布一条好友关系变更事件
	PublishFriendEvent(event *FriendEvent) error

	// Close 关闭底层连接
	Close() error
}

// eventPublisher 用于存储注入的 EventPublisher 实现
var eventPublisher EventPublisher

// SetEventPublisher 注入 EventPublisher 实现
func SetEventPublisher(p EventPublisher) {
	eventPublisher = p
}

// GetEventPublisher 获取 EventPublisher 实现
func GetEventPublisher() EventPublisher {
	return eventPublisher
}
