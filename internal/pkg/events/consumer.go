package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Handler processes a single delivered event. Returning an error causes
// the event to be dropped after logging, not redelivered forever; the
// consumer group's pending list is the retry mechanism for crashes.
type Handler func(ctx context.Context, evt Event) error

const (
	readBatchSize = 16
	readBlock     = 5 * time.Second
	retryBackoff  = time.Second
)

// Consumer reads a stream through a consumer group and dispatches
// events to registered handlers. Delivery is at-least-once: handlers
// must be idempotent. Events with no registered handler are acked and
// skipped.
type Consumer struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	handlers map[string]Handler
	logger   *slog.Logger
}

func NewConsumer(client *redis.Client, stream, group, consumer string, logger *slog.Logger) *Consumer {
	return &Consumer{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: consumer,
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Handle registers a handler for an event type. Not safe to call after
// Run has started.
func (c *Consumer) Handle(eventType string, h Handler) {
	c.handlers[eventType] = h
}

// Run blocks reading the stream until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}

	c.logger.Info("event consumer started",
		"stream", c.stream,
		"group", c.group,
		"consumer", c.consumer,
	)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		res, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, ">"},
			Count:    readBatchSize,
			Block:    readBlock,
		}).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("event stream read failed", "stream", c.stream, "error", err)
			time.Sleep(retryBackoff)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
				if err := c.client.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
					c.logger.Error("event ack failed", "stream", c.stream, "id", msg.ID, "error", err)
				}
			}
		}
	}
}

// process decodes and dispatches one message. Malformed payloads and
// handler failures are logged and the message is dropped, bounding the
// cost of poison messages.
func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Warn("dropping message without payload", "stream", c.stream, "id", msg.ID)
		return
	}

	var evt Event
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		c.logger.Warn("dropping malformed event", "stream", c.stream, "id", msg.ID, "error", err)
		return
	}

	h, ok := c.handlers[evt.EventType]
	if !ok {
		return
	}

	if err := h(ctx, evt); err != nil {
		c.logger.Error("dropping event after handler failure",
			"stream", c.stream,
			"event_type", evt.EventType,
			"event_id", evt.EventID,
			"error", err,
		)
	}
}
