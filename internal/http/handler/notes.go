package handler

import (
	"errors"
	"net/http"
	"strings"

	"whiteboard/internal/note"

	"github.com/go-chi/chi/v5"
)

// NotesHandler serves the read-only note API.
type NotesHandler struct {
	Store note.Store
}

func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Store.List(r.Context())
	if err != nil {
		serverError(w, "list notes", err)
		return
	}

	if tag := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("tag"))); tag != "" {
		filtered := make([]note.Note, 0, len(notes))
		for _, n := range notes {
			if n.HasTag(tag) {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	writeJSON(w, http.StatusOK, annotateLikes(r, notes))
}

func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		serverError(w, "get note", err)
		return
	}
	writeJSON(w, http.StatusOK, annotateLikes(r, []note.Note{n})[0])
}

// Next returns the note after {id}, wrapping around to the first one.
func (h *NotesHandler) Next(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Store.List(r.Context())
	if err != nil {
		serverError(w, "list notes", err)
		return
	}

	i := note.Index(notes, chi.URLParam(r, "id"))
	next, ok := note.Next(notes, i)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, annotateLikes(r, []note.Note{next})[0])
}
