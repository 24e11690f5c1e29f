package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("note not found")
	ErrInvalidNote   = errors.New("invalid note")
	ErrMalformedDate = errors.New("malformed date")
)

// Store owns the notes. Readers get snapshots; only the editor writes.
type Store interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, in CreateInput) (Note, error)
	Delete(ctx context.Context, id string) error
}

// Validate trims the input in place and rejects what the editor must not save.
func (in *CreateInput) Validate() error {
	in.Content = strings.TrimSpace(in.Content)
	in.Author = strings.TrimSpace(in.Author)
	in.Heading = strings.TrimSpace(in.Heading)
	in.Date = strings.TrimSpace(in.Date)

	if in.Content == "" {
		return fmt.Errorf("%w: content required", ErrInvalidNote)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidNote, in.Category)
	}
	if in.Date != "" {
		if _, err := ParseDate(in.Date); err != nil {
			return err
		}
	}
	return nil
}

// newNote stamps a validated input with an id, a date and its tags.
func newNote(in CreateInput, now time.Time) Note {
	date := in.Date
	if date == "" {
		date = FormatDate(now)
	}
	return Note{
		ID:        uuid.NewString(),
		Date:      date,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Heading:   in.Heading,
		Tags:      tagsFor(in.Content),
		CreatedAt: now,
	}
}

// Index returns the position of the note whose id or slug equals key, or -1.
func Index(notes []Note, key string) int {
	for i, n := range notes {
		if n.ID == key {
			return i
		}
	}
	for i, n := range notes {
		if n.Slug() == key {
			return i
		}
	}
	return -1
}

// Next returns the note after position i, wrapping to the first.
func Next(notes []Note, i int) (Note, bool) {
	if len(notes) == 0 || i < 0 || i >= len(notes) {
		return Note{}, false
	}
	return notes[(i+1)%len(notes)], true
}
