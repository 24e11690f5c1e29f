package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"regexp"
	"strings"

	"whiteboard/internal/note"
	"whiteboard/internal/timeline"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

var anchorRe = regexp.MustCompile(`[^a-z0-9]+`)

// anchorID turns a period key into the id of its rendered section.
func anchorID(periodKey string) string {
	return strings.Trim(anchorRe.ReplaceAllString(strings.ToLower(periodKey), "-"), "-")
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= 100 {
		return s
	}
	return string(r[:100]) + "..."
}

func liked(n note.Note) bool {
	return n.Liked != nil && *n.Liked
}

// PagesHandler renders the visitor-facing HTML: the one-at-a-time browser
// and the archive with its timeline rail.
type PagesHandler struct {
	Store     note.Store
	Archive   *ArchiveHandler
	templates *template.Template
}

func NewPagesHandler(store note.Store, archive *ArchiveHandler) (*PagesHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"anchor":  anchorID,
		"excerpt": excerpt,
		"liked":   liked,
		"slug":    note.Slug,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return &PagesHandler{Store: store, Archive: archive, templates: tmpl}, nil
}

func (h *PagesHandler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering template %s: %v\n", name, err)
	}
}

type browserData struct {
	Note  *note.Note
	Next  *note.Note
	Index int
	Total int
}

// Browse shows the first note.
func (h *PagesHandler) Browse(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, "")
}

// Note shows the note whose id or slug is {id}; unknown keys go back to /notes.
func (h *PagesHandler) Note(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, chi.URLParam(r, "id"))
}

func (h *PagesHandler) show(w http.ResponseWriter, r *http.Request, key string) {
	notes, err := h.Store.List(r.Context())
	if err != nil {
		serverError(w, "list notes", err)
		return
	}
	if len(notes) == 0 {
		h.render(w, http.StatusOK, "note.html", browserData{})
		return
	}

	i := 0
	if key != "" {
		i = note.Index(notes, key)
		if i < 0 {
			http.Redirect(w, r, "/notes", http.StatusSeeOther)
			return
		}
	}

	notes = annotateLikes(r, notes)
	cur := notes[i]
	next, _ := note.Next(notes, i)
	h.render(w, http.StatusOK, "note.html", browserData{
		Note:  &cur,
		Next:  &next,
		Index: i + 1,
		Total: len(notes),
	})
}

// ToggleLike flips the visitor's like cookie for {id} and goes back.
func (h *PagesHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.Get(r.Context(), id); err != nil {
		http.Redirect(w, r, "/notes", http.StatusSeeOther)
		return
	}

	value := "true"
	if isLiked(r, id) {
		value = "false"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     likeCookieName(id),
		Value:    value,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/notes/"+id, http.StatusSeeOther)
}

type archivePageData struct {
	Sections []archiveSection
	Markers  []archiveMarker
	Failed   bool
}

type archiveSection struct {
	Anchor string
	Title  string
	Year   bool
	Notes  []note.Note
}

type archiveMarker struct {
	Anchor string
	Label  string
	Kind   string
	Top    float64
}

func (h *PagesHandler) ArchivePage(w http.ResponseWriter, r *http.Request) {
	v, err := h.Archive.build(r)
	if err != nil {
		log.Printf("build archive: %v\n", err)
		h.render(w, http.StatusOK, "archive.html", archivePageData{Failed: true})
		return
	}

	byKey := make(map[string]timeline.Section, len(v.sections))
	for _, s := range v.sections {
		byKey[s.PeriodKey] = s
	}

	data := archivePageData{}
	for _, b := range v.result.Buckets {
		sec := archiveSection{Anchor: anchorID(b.PeriodKey), Title: b.PeriodKey, Year: b.Kind == timeline.KindYear}
		if s, ok := byKey[b.PeriodKey]; ok && !sec.Year {
			sec.Notes = s.Notes
		}
		data.Sections = append(data.Sections, sec)
		delete(byKey, b.PeriodKey)
	}
	// fallback sections, in the order Sections produced them
	for _, s := range v.sections {
		if _, ok := byKey[s.PeriodKey]; ok {
			data.Sections = append(data.Sections, archiveSection{Anchor: anchorID(s.PeriodKey), Title: s.PeriodKey, Notes: s.Notes})
		}
	}
	for _, m := range v.markers {
		data.Markers = append(data.Markers, archiveMarker{
			Anchor: anchorID(m.PeriodKey),
			Label:  m.Label,
			Kind:   string(m.Kind),
			Top:    m.Top,
		})
	}
	h.render(w, http.StatusOK, "archive.html", data)
}
