package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"whiteboard/internal/note"
	"whiteboard/internal/timeline"
)

// ArchiveHandler serves the chronological archive and its rail.
type ArchiveHandler struct {
	Store   note.Store
	Cache   *timeline.Cache
	Options timeline.Options
	Rail    timeline.Rail
}

type railBucketDTO struct {
	timeline.Bucket
	Top float64 `json:"top"`
}

type archiveDTO struct {
	Threshold   int                `json:"threshold"`
	SplitHalves bool               `json:"split_halves"`
	Buckets     []railBucketDTO    `json:"buckets"`
	Sections    []timeline.Section `json:"sections"`
}

var errBadQuery = errors.New("bad query")

// archiveView is everything one archive render needs.
type archiveView struct {
	opts     timeline.Options
	result   timeline.Result
	sections []timeline.Section
	markers  []timeline.Marker
}

// options reads per-request overrides: ?threshold=N, ?split=false.
func (h *ArchiveHandler) options(r *http.Request) (timeline.Options, error) {
	opts := h.Options
	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("threshold")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errBadQuery
		}
		opts.Threshold = n
	}
	if v := strings.TrimSpace(strings.ToLower(q.Get("split"))); v != "" {
		opts.SplitHalves = v == "true"
	}
	return opts, nil
}

func (h *ArchiveHandler) build(r *http.Request) (archiveView, error) {
	opts, err := h.options(r)
	if err != nil {
		return archiveView{}, err
	}

	notes, err := h.Store.List(r.Context())
	if err != nil {
		return archiveView{}, err
	}
	if strings.EqualFold(r.URL.Query().Get("sort"), "newest") {
		notes = timeline.SortNewestFirst(notes)
	}

	res, err := h.Cache.Build(notes, opts)
	if err != nil {
		return archiveView{}, err
	}

	return archiveView{
		opts:     opts,
		result:   res,
		sections: res.Sections(annotateLikes(r, notes)),
		markers:  h.Rail.Markers(res.Buckets),
	}, nil
}

func (h *ArchiveHandler) Archive(w http.ResponseWriter, r *http.Request) {
	v, err := h.build(r)
	if err != nil {
		switch {
		case errors.Is(err, errBadQuery):
			http.Error(w, "invalid threshold", http.StatusBadRequest)
		case errors.Is(err, timeline.ErrNegativeThreshold):
			http.Error(w, "threshold must not be negative", http.StatusBadRequest)
		default:
			serverError(w, "build archive", err)
		}
		return
	}

	out := archiveDTO{
		Threshold:   v.opts.Threshold,
		SplitHalves: v.opts.SplitHalves,
		Buckets:     make([]railBucketDTO, len(v.result.Buckets)),
		Sections:    v.sections,
	}
	for i, b := range v.result.Buckets {
		out.Buckets[i] = railBucketDTO{Bucket: b, Top: v.markers[i].Top}
	}
	writeJSON(w, http.StatusOK, out)
}
