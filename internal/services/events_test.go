package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/recipeshare/server/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestRecipeEventPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("publishes with generated event id", func(t *testing.T) {
		writer := NewMockKafkaWriter(ctrl)
		writer.EXPECT().
			WriteMessages(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)

				var event models.RecipeEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.EventRecipeCreated, event.Type)
				assert.Equal(t, int64(7), event.RecipeID)
				assert.NotEmpty(t, event.EventID)
				assert.Equal(t, []byte(event.EventID), msgs[0].Key)
				return nil
			})

		publisher := NewRecipeEventPublisher(writer)
		publisher.Publish(ctx, models.RecipeEvent{
			Type:     models.EventRecipeCreated,
			RecipeID: 7,
		})
	})

	t.Run("nil writer is a no-op", func(t *testing.T) {
		publisher := NewRecipeEventPublisher(nil)
		publisher.Publish(ctx, models.RecipeEvent{Type: models.EventRecipeDeleted, RecipeID: 7})
	})

	t.Run("write failure never panics the caller", func(t *testing.T) {
		writer := NewMockKafkaWriter(ctrl)
		writer.EXPECT().
			WriteMessages(ctx, gomock.Any()).
			Return(errors.New("broker unreachable"))

		publisher := NewRecipeEventPublisher(writer)
		publisher.Publish(ctx, models.RecipeEvent{Type: models.EventRecipeUpdated, RecipeID: 7})
	})
}
