package models

import "io"

// ImageDB represents an image row pointing into the media store.
type ImageDB struct {
	ID       int64  `json:"id" db:"id"`
	RecipeID int64  `json:"recipe_id" db:"recipe_id"`
	URL      string `json:"url" db:"url"`
}

// ImageUpload is an inbound multipart file headed for the media store.
// The owner of the upload closes Body once it has been consumed.
type ImageUpload struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
