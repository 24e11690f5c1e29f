package handler

import (
	"net/http"

	"whiteboard/internal/note"
)

// Likes belong to the visitor, not the note: each one is a cookie named
// after the note id, never stored server-side.
func likeCookieName(id string) string {
	return "note-like-" + id
}

func isLiked(r *http.Request, id string) bool {
	c, err := r.Cookie(likeCookieName(id))
	return err == nil && c.Value == "true"
}

// annotateLikes returns a copy of notes with Liked filled in for this visitor.
func annotateLikes(r *http.Request, notes []note.Note) []note.Note {
	out := make([]note.Note, len(notes))
	for i, n := range notes {
		liked := isLiked(r, n.ID)
		n.Liked = &liked
		out[i] = n
	}
	return out
}
