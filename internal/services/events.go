package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes recipe lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.RecipeEvent)
}

// RecipeEventPublisher publishes recipe events to Kafka. A nil writer
// turns publishing into a logged no-op.
type RecipeEventPublisher struct {
	writer KafkaWriter
}

// NewRecipeEventPublisher creates a publisher over the given writer.
func NewRecipeEventPublisher(writer KafkaWriter) *RecipeEventPublisher {
	return &RecipeEventPublisher{writer: writer}
}

// Publish sends one event. Publishing failures are logged, never fatal to
// the surrounding operation.
func (p *RecipeEventPublisher) Publish(ctx context.Context, event models.RecipeEvent) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", event.Type, "recipe_id", event.RecipeID)
		return
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal recipe event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish recipe event", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("recipe event published", "event_id", event.EventID, "type", event.Type, "recipe_id", event.RecipeID)
	}
}
