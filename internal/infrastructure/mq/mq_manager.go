package mq

import (
	myconfig "edulink_server/internal/config"

	"go.uber.org/zap"
)

// Init 根据配置选择事件发布实现并注入
// event_mode 为 kafka 时使用kafka，其余情况回落到channel
func Init() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	if kafkaConfig.EventMode == "kafka" {
		k := NewKafkaPublisher()
		k.CreateTopic()
		SetEventPublisher(k)
		zap.L().Info("friend event publisher init with kafka", zap.String("topic", kafkaConfig.EventTopic))
	} else {
		SetEventPublisher(NewChannelPublisher())
		zap.L().Info("friend event publisher init with channel")
	}
}

// Close 关闭事件发布端
func Close() {
	if p := GetEventPublisher(); p != nil {
		if err := p.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
}
