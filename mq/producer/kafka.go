package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/config"
	"github.com/Xushengqwer/qa_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendQuestionDeletedEvent 发送问题删除事件到 Kafka
// - 意图: 问题（连同其回答）删除后通知搜索索引等下游服务同步数据
// - 输入: ctx context.Context 上下文, questionID uint64 问题ID
// - 输出: error 错误信息
func (p *KafkaProducer) SendQuestionDeletedEvent(ctx context.Context, questionID uint64) error {
	event := events.QuestionDeletedEvent{
		EventID:    uuid.New().String(),
		Timestamp:  time.Now(),
		QuestionID: questionID,
	}
	return p.SendEvent(ctx, p.topics.QuestionDeleted, event)
}

// SendAnswerAcceptedEvent 发送采纳回答事件到 Kafka
// - 意图: 通知声望服务为回答作者加分
// - 输入: ctx context.Context 上下文, questionID/answerID 资源ID, answerAuthorID 回答作者
// - 输出: error 错误信息
func (p *KafkaProducer) SendAnswerAcceptedEvent(ctx context.Context, questionID, answerID uint64, answerAuthorID string) error {
	event := events.AnswerAcceptedEvent{
		EventID:        uuid.New().String(),
		Timestamp:      time.Now(),
		QuestionID:     questionID,
		AnswerID:       answerID,
		AnswerAuthorID: answerAuthorID,
	}
	return p.SendEvent(ctx, p.topics.AnswerAccepted, event)
}

// Close 关闭底层的 Kafka Writer，释放连接资源。
func (p *KafkaProducer) Close() error {
	p.logger.Info("正在关闭 Kafka 生产者...")
	return p.writer.Close()
}
