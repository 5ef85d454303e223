package models

// Recipe event types published to the event stream.
const (
	EventRecipeCreated    = "recipe_created"
	EventRecipeUpdated    = "recipe_updated"
	EventRecipeDeleted    = "recipe_deleted"
	EventImageDeleteError = "image_delete_failed"
)

// RecipeEvent is published after recipe aggregate operations, including
// media-store delete failures so they stay visible instead of being
// silently dropped.
type RecipeEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	RecipeID  int64  `json:"recipe_id"`
	Title     string `json:"title,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
