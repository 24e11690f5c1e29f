package http

import (
	"net/http"

	"whiteboard/internal/auth"
	"whiteboard/internal/config"
	"whiteboard/internal/http/handler"
	mw "whiteboard/internal/http/middleware"
	"whiteboard/internal/note"
	"whiteboard/internal/timeline"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, store note.Store, gate *auth.Gate, jwtSvc *auth.JWT) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	notesH := &handler.NotesHandler{Store: store}
	archiveH := &handler.ArchiveHandler{
		Store: store,
		Cache: timeline.NewCache(),
		Options: timeline.Options{
			Threshold:   cfg.TimelineThreshold,
			SplitHalves: cfg.TimelineSplitHalves,
		},
		Rail: timeline.DefaultRail,
	}
	pages, err := handler.NewPagesHandler(store, archiveH)
	if err != nil {
		return nil, err
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/notes", http.StatusFound)
	})
	r.Get("/notes", pages.Browse)
	r.Get("/notes/{id}", pages.Note)
	r.Post("/notes/{id}/like", pages.ToggleLike)
	r.Get("/archive", pages.ArchivePage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/notes", notesH.List)
		r.Get("/notes/{id}", notesH.Get)
		r.Get("/notes/{id}/next", notesH.Next)
		r.Get("/archive", archiveH.Archive)

		adminH := &handler.AdminHandler{Store: store, Gate: gate}
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminH.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth(jwtSvc))

				r.Get("/me", (&handler.MeHandler{}).Me)
				r.Get("/notes", adminH.List)
				r.Post("/notes", adminH.Create)
				r.Delete("/notes/{id}", adminH.Delete)
			})
		})
	})

	return r, nil
}
