package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestBlogEventFacade_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	t.Run("publishes event keyed by post id", func(t *testing.T) {
		writer := NewMockMessageWriter(ctrl)

		var captured kafka.Message
		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				captured = msgs[0]
				return nil
			})

		facade := NewBlogEventFacade(writer)
		facade.Publish(ctx, EventPostCreated, postID, userID)

		assert.Equal(t, postID.String(), string(captured.Key))

		var evt models.BlogEvent
		assert.NoError(t, json.Unmarshal(captured.Value, &evt))
		assert.Equal(t, EventPostCreated, evt.Event)
		assert.Equal(t, postID.String(), evt.PostID)
		assert.Equal(t, userID.String(), evt.UserID)
		assert.NotEmpty(t, evt.EventID)
		assert.NotZero(t, evt.Timestamp)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		writer := NewMockMessageWriter(ctrl)
		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("kafka error"))

		facade := NewBlogEventFacade(writer)

		assert.NotPanics(t, func() {
			facade.Publish(ctx, EventPostUpdated, postID, userID)
		})
	})

	t.Run("nil facade and nil writer are no-ops", func(t *testing.T) {
		var facade *BlogEventFacade
		assert.NotPanics(t, func() {
			facade.Publish(ctx, EventPostDeleted, postID, userID)
		})

		assert.NotPanics(t, func() {
			NewBlogEventFacade(nil).Publish(ctx, EventPostDeleted, postID, userID)
		})
	})
}
