package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/wire"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewBus, wire.Bind(new(run.EventPublisher), new(*Bus)))

const TopicRunCompleted = "run.completed"

// Bus 进程内事件总线
// 执行到达终态后发布run.completed，审计订阅方落结构化日志
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

// PublishRunCompleted 发布失败只记日志，不影响执行结果
func (b *Bus) PublishRunCompleted(ctx context.Context, event *run.RunCompletedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Warn("failed to marshal run event", zap.Error(err))
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(TopicRunCompleted, msg); err != nil {
		b.logger.Warn("failed to publish run event", zap.Error(err))
	}
}

// StartAuditLog 订阅执行完成事件并写审计日志，ctx取消后退出
func (b *Bus) StartAuditLog(ctx context.Context) error {
	messages, err := b.pubsub.Subscribe(ctx, TopicRunCompleted)
	if err != nil {
		return err
	}
	go func() {
		for msg := range messages {
			var event run.RunCompletedEvent
			if err := json.Unmarshal(msg.Payload, &event); err == nil {
				b.logger.Info("run completed",
					zap.String("run_task_id", event.RunTaskID),
					zap.String("task_id", event.TaskID),
					zap.String("status", event.Status),
					zap.String("environment", event.Environment),
					zap.String("created_by", event.CreatedBy),
					zap.Float64("execution_time_ms", event.ExecutionTimeMs))
			}
			msg.Ack()
		}
	}()
	return nil
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}
