package mq

import (
	"context"
	"time"

	myconfig "edulink_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ctx = context.Background()

// kafkaPublisher 基于 Kafka 的事件发布实现
type kafkaPublisher struct {
	EventWriter *kafka.Writer
	KafkaConn   *kafka.Conn
}

// NewKafkaPublisher 初始化kafka发布端
func NewKafkaPublisher() *kafkaPublisher {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	k := &kafkaPublisher{}
	k.EventWriter = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.EventTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: false,
	}
	return k
}

// CreateTopic 创建topic
func (k *kafkaPublisher) CreateTopic() {
	// 如果已经有topic了，就不创建了
	kafkaConfig := myconfig.GetConfig().KafkaConfig

	// 连接至任意kafka节点
	var err error
	k.KafkaConn, err = kafka.Dial("tcp", kafkaConfig.HostPort)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             kafkaConfig.EventTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
	}

	// 创建topic
	if err = k.KafkaConn.CreateTopics(topicConfigs...); err != nil {
		zap.L().Error(err.Error())
	}
}

// PublishFriendEvent 实现 EventPublisher 接口
// 以双方中 ActorId 作为分区键，保证同一用户的事件有序
func (k *kafkaPublisher) PublishFriendEvent(event *FriendEvent) error {
	value, err := event.Marshal()
	if err != nil {
		return err
	}
	return k.EventWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ActorId),
		Value: value,
	})
}

func (k *kafkaPublisher) Close() error {
	if k.KafkaConn != nil {
		if err := k.KafkaConn.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
	return k.EventWriter.Close()
}
