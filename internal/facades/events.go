package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// Blog event names.
const (
	EventPostCreated = "post_created"
	EventPostUpdated = "post_updated"
	EventPostDeleted = "post_deleted"
)

// MessageWriter defines a Kafka writer abstraction.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the writer
}

// BlogEventFacade publishes blog lifecycle events to Kafka.
type BlogEventFacade struct {
	writer MessageWriter
}

// NewBlogEventFacade creates a new facade with a Kafka writer.
func NewBlogEventFacade(writer MessageWriter) *BlogEventFacade {
	return &BlogEventFacade{writer: writer}
}

// Publish sends a blog event keyed by post id. Failures are logged and
// swallowed: event delivery never affects the client response.
func (f *BlogEventFacade) Publish(ctx context.Context, event string, postID, userID uuid.UUID) {
	if f == nil || f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", event, "post_id", postID)
		return
	}

	evt := models.BlogEvent{
		EventID:   uuid.NewString(),
		Event:     event,
		PostID:    postID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal blog event", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.PostID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish blog event", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Blog event published", "event_id", evt.EventID, "event", event, "post_id", postID)
	}
}
