package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	kafkaconfig "courtly/pkg/kafka/config"

	"github.com/segmentio/kafka-go"
)

// Consumer reads a topic within a consumer group, retries failed handler
// invocations, and parks poison messages on the DLQ topic.
type Consumer struct {
	reader     *kafka.Reader
	dlqWriter  *kafka.Writer
	topic      string
	groupID    string
	maxRetries int
	handler    MessageHandler
	closed     bool
	mu         sync.RWMutex
	wg         sync.WaitGroup
}

func NewConsumer(cfg *kafkaconfig.Config, topic, groupID, dlqTopic string, handler MessageHandler) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	consumer := &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			Topic:             topic,
			GroupID:           groupID,
			MinBytes:          cfg.ConsumerMinBytes,
			MaxBytes:          cfg.ConsumerMaxBytes,
			MaxWait:           cfg.ConsumerMaxWait,
			CommitInterval:    cfg.ConsumerCommitInterval,
			HeartbeatInterval: cfg.ConsumerHeartbeatInterval,
			SessionTimeout:    cfg.ConsumerSessionTimeout,
			RebalanceTimeout:  cfg.ConsumerRebalanceTimeout,
			StartOffset:       cfg.ConsumerStartOffset,
			Logger:            kafka.LoggerFunc(func(msg string, args ...any) {}),
			ErrorLogger:       kafka.LoggerFunc(log.Printf),
		}),
		topic:      topic,
		groupID:    groupID,
		maxRetries: cfg.ConsumerMaxRetries,
		handler:    handler,
	}

	if dlqTopic != "" {
		consumer.dlqWriter = &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        dlqTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			MaxAttempts:  3,
			Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
			ErrorLogger:  kafka.LoggerFunc(log.Printf),
		}
	}

	return consumer, nil
}

// Start consumes until ctx is cancelled. Offsets are committed after
// processing, successful or not: failures are already retried or parked on
// the DLQ, so redelivering them would only duplicate work.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrConsumerClosed
	}
	c.mu.RUnlock()

	c.wg.Add(1)
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			kafkaMsg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Printf("kafka consumer error fetching message: %v", err)
				time.Sleep(1 * time.Second)
				continue
			}

			if err := c.processMessage(ctx, convertMessage(kafkaMsg)); err != nil {
				log.Printf("kafka consumer error processing message: %v", err)
			}

			if err := c.reader.CommitMessages(ctx, kafkaMsg); err != nil {
				log.Printf("kafka consumer error committing offset: %v", err)
			}
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg Message) error {
	err := c.handler(ctx, msg)
	if err == nil {
		return nil
	}

	retries := msg.GetRetryCount()
	if ShouldRetry(err, retries, c.maxRetries) {
		msg.IncrementRetryCount()
		log.Printf("retrying message (attempt %d/%d): %v", retries+1, c.maxRetries, err)
		return c.processMessage(ctx, msg)
	}

	if c.dlqWriter != nil {
		if dlqErr := c.sendToDLQ(ctx, msg, err); dlqErr != nil {
			log.Printf("failed to send message to DLQ: %v (original error: %v)", dlqErr, err)
		} else {
			log.Printf("message sent to DLQ after %d retries: %v", retries, err)
		}
	}

	return err
}

func (c *Consumer) sendToDLQ(ctx context.Context, msg Message, originalErr error) error {
	msg.Headers[HeaderOriginalTopic] = c.topic
	msg.Headers["dlq-error"] = originalErr.Error()
	msg.Headers["dlq-timestamp"] = time.Now().Format(time.RFC3339)
	msg.Headers["dlq-consumer-group"] = c.groupID

	msg.Timestamp = time.Now()
	return c.dlqWriter.WriteMessages(ctx, toKafkaMessage(msg))
}

func convertMessage(kafkaMsg kafka.Message) Message {
	msg := Message{
		Key:       string(kafkaMsg.Key),
		Value:     kafkaMsg.Value,
		Headers:   make(map[string]string),
		Topic:     kafkaMsg.Topic,
		Partition: kafkaMsg.Partition,
		Offset:    kafkaMsg.Offset,
		Timestamp: kafkaMsg.Time,
	}
	for _, header := range kafkaMsg.Headers {
		msg.Headers[header.Key] = string(header.Value)
	}
	return msg
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.wg.Wait()

	err := c.reader.Close()
	if c.dlqWriter != nil {
		if dlqErr := c.dlqWriter.Close(); err == nil {
			err = dlqErr
		}
	}
	return err
}

func (c *Consumer) Stats() kafka.ReaderStats {
	return c.reader.Stats()
}
