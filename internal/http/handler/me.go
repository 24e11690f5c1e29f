package handler

import (
	"net/http"

	"whiteboard/internal/auth"
)

type MeHandler struct{}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	sub, _ := auth.SubjectFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"subject": sub,
	})
}
