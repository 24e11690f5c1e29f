package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"whiteboard/internal/auth"
	"whiteboard/internal/note"

	"github.com/go-chi/chi/v5"
)

// AdminHandler is the author's editor: login, create and delete.
type AdminHandler struct {
	Store note.Store
	Gate  *auth.Gate
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	token, err := h.Gate.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			http.Error(w, "invalid password", http.StatusUnauthorized)
			return
		}
		serverError(w, "admin login", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Store.List(r.Context())
	if err != nil {
		serverError(w, "list notes", err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

type createNoteReq struct {
	Content  string `json:"content"`
	Category string `json:"category"`
	Heading  string `json:"heading"`
	Author   string `json:"author"`
	Date     string `json:"date"` // optional, defaults to today
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	n, err := h.Store.Create(r.Context(), note.CreateInput{
		Content:  req.Content,
		Category: note.Category(req.Category),
		Heading:  req.Heading,
		Author:   req.Author,
		Date:     req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, note.ErrInvalidNote), errors.Is(err, note.ErrMalformedDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			serverError(w, "create note", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, n)
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		serverError(w, "delete note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
