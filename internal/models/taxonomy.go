package models

// TaxonomyDB represents a diet or category lookup row.
type TaxonomyDB struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// Options holds the lookup lists offered to recipe editors.
type Options struct {
	Diets          []string `json:"diets"`
	Categories     []string `json:"categories"`
	MeasuringUnits []string `json:"measuringUnits"`
}
