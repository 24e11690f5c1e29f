package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whiteboard/internal/auth"
	"whiteboard/internal/config"
	"whiteboard/internal/note"
)

type testServer struct {
	t     *testing.T
	h     http.Handler
	store *note.MemoryStore
}

func newTestServer(t *testing.T, seed ...note.Note) *testServer {
	t.Helper()

	hash, err := auth.HashPassword("letmein")
	require.NoError(t, err)
	jwtSvc := auth.NewJWT("test-secret")

	store := note.NewMemoryStore(seed...)
	cfg := config.Config{TimelineThreshold: 2, TimelineSplitHalves: true}
	h, err := NewRouter(cfg, store, auth.NewGate(hash, jwtSvc), jwtSvc)
	require.NoError(t, err)

	return &testServer{t: t, h: h, store: store}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login() string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/admin/login", "", map[string]string{"password": "letmein"})
	require.Equal(s.t, http.StatusOK, rec.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

type archiveResp struct {
	Buckets []struct {
		Kind      string  `json:"kind"`
		Label     string  `json:"label"`
		PeriodKey string  `json:"period_key"`
		Count     int     `json:"count"`
		Top       float64 `json:"top"`
	} `json:"buckets"`
	Sections []struct {
		PeriodKey string      `json:"period_key"`
		Notes     []note.Note `json:"notes"`
	} `json:"sections"`
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestArchive_JSON(t *testing.T) {
	s := newTestServer(t,
		note.Note{ID: "a", Date: "2025-03-01", Content: "one"},
		note.Note{ID: "b", Date: "2025-03-10", Content: "two"},
		note.Note{ID: "c", Date: "2025-03-20", Content: "three"},
	)

	rec := s.do(http.MethodGet, "/api/archive", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out archiveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	require.Len(t, out.Buckets, 3)
	assert.Equal(t, "2025", out.Buckets[0].PeriodKey)
	assert.Equal(t, 12.5, out.Buckets[0].Top)
	assert.Equal(t, "March 1-15, 2025", out.Buckets[1].PeriodKey)
	assert.Equal(t, 2, out.Buckets[1].Count)
	assert.Equal(t, 87.5, out.Buckets[2].Top)

	require.Len(t, out.Sections, 2)
	assert.Equal(t, "March 1-15, 2025", out.Sections[0].PeriodKey)
	require.Len(t, out.Sections[0].Notes, 2)
	assert.Equal(t, "a", out.Sections[0].Notes[0].ID)

	rec = s.do(http.MethodGet, "/api/archive?threshold=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out = archiveResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Buckets, 2)
	assert.Equal(t, "March 2025", out.Buckets[1].PeriodKey)

	rec = s.do(http.MethodGet, "/api/archive?split=false", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out = archiveResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Buckets, 2)
	assert.Equal(t, 3, out.Buckets[1].Count)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/archive?threshold=-1", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/archive?threshold=many", "", nil).Code)
}

func TestArchive_MalformedDateIsServerError(t *testing.T) {
	s := newTestServer(t, note.Note{ID: "x", Date: "whenever", Content: "?"})

	assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodGet, "/api/archive", "", nil).Code)

	rec := s.do(http.MethodGet, "/archive", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be built")
}

func TestArchive_EmptyStore(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/archive", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out archiveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Buckets)
	assert.Empty(t, out.Sections)

	rec = s.do(http.MethodGet, "/archive", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No notes yet")
}

func TestArchivePage_RendersAnchorsAndRail(t *testing.T) {
	s := newTestServer(t, note.Seed()...)

	rec := s.do(http.MethodGet, "/archive", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `id="june-2025"`)
	assert.Contains(t, body, `href="#june-2025"`)
	assert.Contains(t, body, `id="2024"`)
	assert.Contains(t, body, `top: 12.50%`)
	assert.Contains(t, body, `top: 87.50%`)
}

func TestNotesAPI(t *testing.T) {
	s := newTestServer(t, note.Seed()...)

	rec := s.do(http.MethodGet, "/api/notes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []note.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 13)

	rec = s.do(http.MethodGet, "/api/notes?tag=Study", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tagged []note.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tagged))
	require.Len(t, tagged, 1)
	assert.Equal(t, "1", tagged[0].ID)

	rec = s.do(http.MethodGet, "/api/notes/13/next", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var next note.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &next))
	assert.Equal(t, "1", next.ID)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/notes/nope", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/notes/nope/next", "", nil).Code)
}

func TestAdminFlow(t *testing.T) {
	s := newTestServer(t, note.Seed()...)

	rec := s.do(http.MethodPost, "/api/admin/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/admin/notes", "", map[string]string{"content": "x"}).Code)

	token := s.login()

	rec = s.do(http.MethodGet, "/api/admin/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), auth.AdminSubject)

	rec = s.do(http.MethodPost, "/api/admin/notes", token, map[string]string{
		"content":  "Rounds started at 5am. #ward",
		"category": string(note.CategoryClinical),
		"date":     "2025-07-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created note.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"ward"}, []string(created.Tags))

	rec = s.do(http.MethodGet, "/api/archive", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out archiveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "July 2025", out.Buckets[1].PeriodKey)

	rec = s.do(http.MethodPost, "/api/admin/notes", token, map[string]string{"content": "  ", "category": string(note.CategoryQuote)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodPost, "/api/admin/notes", token, map[string]string{"content": "x", "category": "Gossip"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodPost, "/api/admin/notes", token, map[string]string{"content": "x", "category": string(note.CategoryQuote), "date": "someday"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/admin/notes/"+created.ID, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/admin/notes/"+created.ID, token, nil).Code)

	rec = s.do(http.MethodGet, "/api/admin/notes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []note.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 13)
}

func TestBrowserPages(t *testing.T) {
	s := newTestServer(t, note.Seed()...)

	rec := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/notes", rec.Header().Get("Location"))

	rec = s.do(http.MethodGet, "/notes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "June 22, 2025")
	assert.Contains(t, rec.Body.String(), `href="/notes/2"`)

	rec = s.do(http.MethodGet, "/notes/13", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/notes/1"`, "next wraps to the first note")

	slug := note.Seed()[2].Slug()
	rec = s.do(http.MethodGet, "/notes/"+slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "May 15, 2025")

	rec = s.do(http.MethodGet, "/notes/missing", "", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/notes", rec.Header().Get("Location"))
}

func TestBrowser_Empty(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/notes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing on the whiteboard yet")
}

func TestToggleLike(t *testing.T) {
	s := newTestServer(t, note.Seed()...)

	rec := s.do(http.MethodPost, "/notes/3/like", "", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "note-like-3", cookies[0].Name)
	assert.Equal(t, "true", cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/3", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"liked":true`))

	req = httptest.NewRequest(http.MethodPost, "/notes/3/like", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "false", rec.Result().Cookies()[0].Value)
}
