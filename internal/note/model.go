package note

import (
	"time"

	"github.com/lib/pq"
)

// Category is the optional classification label the author picks in the editor.
type Category string

const (
	CategoryClinical   Category = "Clinical Observation"
	CategoryReflection Category = "Personal Reflection"
	CategoryStudy      Category = "Study Note"
	CategoryQuote      Category = "Quote"
)

// Categories lists the labels the editor offers, in display order.
var Categories = []Category{CategoryClinical, CategoryReflection, CategoryStudy, CategoryQuote}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Note is a single dated entry. Date keeps the string the author wrote;
// only its calendar day matters (see ParseDate).
type Note struct {
	ID       string         `gorm:"primaryKey;type:text" json:"id"`
	Date     string         `gorm:"type:text;not null" json:"date"`
	Content  string         `gorm:"type:text;not null" json:"content"`
	Author   string         `gorm:"type:text;not null;default:''" json:"author,omitempty"`
	Category Category       `gorm:"type:text;index;not null;default:''" json:"category,omitempty"`
	Heading  string         `gorm:"type:text;not null;default:''" json:"heading,omitempty"`
	Tags     pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`

	// Liked is filled in by the view layer from the visitor's own state.
	Liked *bool `gorm:"-" json:"liked,omitempty"`

	CreatedAt time.Time `gorm:"index;not null;default:now()" json:"created_at"`
}

// CreateInput is what the editor submits for a new note.
type CreateInput struct {
	Content  string
	Category Category
	Heading  string
	Author   string
	Date     string // optional, defaults to today
}
