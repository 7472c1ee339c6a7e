package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/repo/memory"
)

// setupHandlerTest mounts a handler over an empty memory repository.
func setupHandlerTest(t *testing.T, opts ...Option) (http.Handler, *memory.Repository) {
	t.Helper()
	repo := memory.New()
	return mountHandler(NewHandler(repo, opts...)), repo
}

func mountHandler(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/api", h.Routes())
	r.Get("/healthz/ready", h.Ready)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const programJSON = `{
	"title": "Engineering Technology",
	"description": "Hands-on engineering.",
	"duration": "2 Years",
	"category": "Engineering",
	"featured": true,
	"icon": "fas fa-cogs",
	"image": "/eng.jpg",
	"color": "poly-blue"
}`

func TestProgramLifecycle(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodPost, "/api/programs", programJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[campus.Program](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.Featured)

	w = do(t, router, http.MethodGet, "/api/programs/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeBody[campus.Program](t, w))

	w = do(t, router, http.MethodPut, "/api/programs/1", `{"title": "Engineering", "featured": false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[campus.Program](t, w)
	assert.Equal(t, "Engineering", updated.Title)
	assert.False(t, updated.Featured)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Color, updated.Color)

	w = do(t, router, http.MethodGet, "/api/programs/featured", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]campus.Program](t, w))

	w = do(t, router, http.MethodDelete, "/api/programs/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Program deleted successfully", decodeBody[MessageResponse](t, w).Message)

	w = do(t, router, http.MethodDelete, "/api/programs/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/api/programs/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Program not found", decodeBody[ErrorResponse](t, w).Message)
}

func TestListsAreNeverNull(t *testing.T) {
	router, _ := setupHandlerTest(t)

	paths := []string{
		"/api/programs", "/api/programs/featured", "/api/news", "/api/news/featured",
		"/api/events", "/api/events/featured", "/api/events/upcoming", "/api/management",
		"/api/testimonials", "/api/testimonials/featured", "/api/achievements",
		"/api/achievements/featured", "/api/facilities", "/api/facilities/featured",
		"/api/alumni", "/api/alumni/featured", "/api/institutional-data",
		"/api/institutional-data/category/Research", "/api/contacts",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := do(t, router, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestCreateProgramValidation(t *testing.T) {
	router, repo := setupHandlerTest(t)

	w := do(t, router, http.MethodPost, "/api/programs", `{"title": "   ", "featured": true}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBody[ErrorResponse](t, w)
	assert.Equal(t, "Invalid program data", resp.Message)
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"title", "description", "duration", "category", "icon", "image", "color"}, fields)

	programs, err := repo.ListPrograms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, programs)
}

func TestMalformedBody(t *testing.T) {
	router, _ := setupHandlerTest(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"title":`},
		{"array", `[1, 2]`},
		{"trailing data", `{"title": "a"} {"title": "b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/programs", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeBody[ErrorResponse](t, w)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, "body", resp.Errors[0].Field)
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	router, _ := setupHandlerTest(t, WithMaxBodyBytes(64))

	body := `{"title": "` + strings.Repeat("x", 200) + `"}`
	w := do(t, router, http.MethodPost, "/api/programs", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	router, _ := setupHandlerTest(t)

	for _, path := range []string{"/api/programs/abc", "/api/news/-1", "/api/events/0", "/api/alumni/1.5"} {
		w := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w := do(t, router, http.MethodPut, "/api/news/abc", `{"title": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "News article not found", decodeBody[ErrorResponse](t, w).Message)
}

func TestInputIsSanitized(t *testing.T) {
	router, _ := setupHandlerTest(t)

	body := `{
		"title": "<script>alert(1)</script>Open Day",
		"description": "<a href=\"javascript:void(0)\" onclick=\"x()\">tour</a>",
		"duration": "1 Day", "category": "Events", "icon": "i", "image": "/i.jpg", "color": "c"
	}`
	w := do(t, router, http.MethodPost, "/api/programs", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	p := decodeBody[campus.Program](t, w)
	assert.Equal(t, "Open Day", p.Title)
	assert.NotContains(t, p.Description, "javascript:")
	assert.NotContains(t, p.Description, "onclick")
}

func TestUnknownFieldsAreDropped(t *testing.T) {
	router, _ := setupHandlerTest(t)

	body := strings.Replace(programJSON, `"featured": true`, `"featured": true, "id": 99, "secret": "x"`, 1)
	w := do(t, router, http.MethodPost, "/api/programs", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.EqualValues(t, 1, raw["id"])
	assert.NotContains(t, raw, "secret")
}

func TestUpdateNulls(t *testing.T) {
	router, _ := setupHandlerTest(t)
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/programs", programJSON).Code)

	w := do(t, router, http.MethodPut, "/api/programs/1", `{"featured": null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, decodeBody[campus.Program](t, w).Featured)

	w = do(t, router, http.MethodPut, "/api/programs/1", `{"title": null}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[ErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "title", resp.Errors[0].Field)

	w = do(t, router, http.MethodGet, "/api/programs/1", "")
	assert.Equal(t, "Engineering Technology", decodeBody[campus.Program](t, w).Title)
}

func TestUpdateMissingProgram(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodPut, "/api/programs/42", `{"title": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsPublishedAt(t *testing.T) {
	router, _ := setupHandlerTest(t)

	body := `{"title": "Grant", "content": "Body", "summary": "Short", "category": "News", "image": "/n.jpg", "publishedAt": "1999-01-01T00:00:00Z"}`
	w := do(t, router, http.MethodPost, "/api/news", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	n := decodeBody[campus.News](t, w)
	assert.False(t, n.Featured)
	assert.WithinDuration(t, time.Now(), n.PublishedAt, time.Minute)

	w = do(t, router, http.MethodPut, "/api/news/1", `{"summary": "Longer"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[campus.News](t, w)
	assert.Equal(t, "Longer", updated.Summary)
	assert.True(t, n.PublishedAt.Equal(updated.PublishedAt))
}

func TestTestimonialRating(t *testing.T) {
	router, _ := setupHandlerTest(t)

	base := `"name": "Ada", "position": "CTO", "company": "Acme", "content": "Great", "image": "/a.jpg"`
	tests := []struct {
		name   string
		rating string
		status int
		want   int
	}{
		{"default", "", http.StatusCreated, 5},
		{"lowest", `, "rating": 1`, http.StatusCreated, 1},
		{"too high", `, "rating": 7`, http.StatusBadRequest, 0},
		{"zero", `, "rating": 0`, http.StatusBadRequest, 0},
		{"fraction", `, "rating": 4.5`, http.StatusBadRequest, 0},
		{"string", `, "rating": "five"`, http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/testimonials", "{"+base+tt.rating+"}")
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusCreated {
				resp := decodeBody[ErrorResponse](t, w)
				require.NotEmpty(t, resp.Errors)
				assert.Equal(t, "rating", resp.Errors[0].Field)
				return
			}
			assert.Equal(t, tt.want, decodeBody[campus.Testimonial](t, w).Rating)
		})
	}
}

func TestTypeErrorsListEveryField(t *testing.T) {
	router, _ := setupHandlerTest(t)

	tests := []struct {
		name string
		path string
		body string
		want []string
	}{
		{
			name: "testimonial",
			path: "/api/testimonials",
			body: `{"rating": "five"}`,
			want: []string{"rating", "name", "position", "company", "content", "image"},
		},
		{
			name: "program",
			path: "/api/programs",
			body: `{"title": 42, "featured": "yes", "description": "Hands-on training"}`,
			want: []string{"featured", "title", "duration", "category", "icon", "image", "color"},
		},
		{
			name: "management",
			path: "/api/management",
			body: `{"socialLinks": {"email": 7}}`,
			want: []string{"socialLinks.email", "name", "position", "bio", "image"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decodeBody[ErrorResponse](t, w)
			fields := make([]string, 0, len(resp.Errors))
			for _, e := range resp.Errors {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.want, fields)
			assert.Equal(t, tt.want[0]+" has the wrong type", resp.Errors[0].Message)
		})
	}
}

func TestEvents(t *testing.T) {
	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	repo := memory.New(memory.WithClock(func() time.Time { return now }))
	router := mountHandler(NewHandler(repo))

	for _, date := range []string{"2025-01-10", "2025-01-05", "2025-02-01T15:00:00Z"} {
		body := `{"title": "E ` + date + `", "description": "d", "date": "` + date + `", "time": "10:00 AM", "location": "Hall", "category": "Talk"}`
		w := do(t, router, http.MethodPost, "/api/events", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, router, http.MethodGet, "/api/events/upcoming", "")
	require.Equal(t, http.StatusOK, w.Code)
	upcoming := decodeBody[[]campus.Event](t, w)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "E 2025-01-10", upcoming[0].Title)
	assert.Equal(t, "E 2025-02-01T15:00:00Z", upcoming[1].Title)

	w = do(t, router, http.MethodPost, "/api/events", `{"title": "Bad", "description": "d", "date": "next week", "time": "t", "location": "l", "category": "c"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date", decodeBody[ErrorResponse](t, w).Errors[0].Field)
}

func TestManagementSocialLinks(t *testing.T) {
	router, _ := setupHandlerTest(t)

	body := `{"name": "Dr. A", "position": "Rector", "bio": "b", "image": "/r.jpg", "socialLinks": {"email": "not-an-email"}}`
	w := do(t, router, http.MethodPost, "/api/management", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "socialLinks.email", decodeBody[ErrorResponse](t, w).Errors[0].Field)

	body = `{"name": "Dr. A", "position": "Rector", "bio": "b", "image": "/r.jpg", "socialLinks": {"linkedin": "https://linkedin.com/in/a"}}`
	w = do(t, router, http.MethodPost, "/api/management", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	m := decodeBody[campus.ManagementMember](t, w)
	require.NotNil(t, m.SocialLinks)
	assert.Equal(t, "https://linkedin.com/in/a", *m.SocialLinks.LinkedIn)
	assert.Nil(t, m.Email)
}

func TestContacts(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodPost, "/api/contacts", `{"name": "Ada", "email": "ada@", "subject": "Hi", "message": "Hello"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[ErrorResponse](t, w)
	assert.Equal(t, "Invalid contact data", resp.Message)
	assert.Equal(t, "email", resp.Errors[0].Field)

	w = do(t, router, http.MethodPost, "/api/contacts", `{"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Hello"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decodeBody[campus.Contact](t, w)
	assert.Equal(t, int64(1), c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestSettings(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodGet, "/api/settings/site_name", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Setting not found", decodeBody[ErrorResponse](t, w).Message)

	w = do(t, router, http.MethodPut, "/api/settings/site_name", `{"value": "Federal Polytechnic"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decodeBody[campus.Setting](t, w)

	w = do(t, router, http.MethodPost, "/api/settings", `{"key": "site_name", "value": "FedPoly Ede"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decodeBody[campus.Setting](t, w)
	assert.Equal(t, first.ID, second.ID)

	w = do(t, router, http.MethodGet, "/api/settings/site_name", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FedPoly Ede", decodeBody[campus.Setting](t, w).Value)

	w = do(t, router, http.MethodPost, "/api/settings", `{"value": "orphan"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "key", decodeBody[ErrorResponse](t, w).Errors[0].Field)

	w = do(t, router, http.MethodPut, "/api/settings/site_name", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "value", decodeBody[ErrorResponse](t, w).Errors[0].Field)
}

func TestInstitutionalDataByCategory(t *testing.T) {
	router, _ := setupHandlerTest(t)

	for _, cat := range []string{"Research", "Students", "Research"} {
		body := `{"dataType": "stat", "title": "T", "value": "10", "category": "` + cat + `"}`
		require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/institutional-data", body).Code)
	}

	w := do(t, router, http.MethodGet, "/api/institutional-data/category/Research", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]campus.InstitutionalData](t, w), 2)

	w = do(t, router, http.MethodGet, "/api/institutional-data/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	d := decodeBody[campus.InstitutionalData](t, w)
	assert.Nil(t, d.Description)
	assert.False(t, d.LastUpdated.IsZero())
}

func TestShowcaseCreates(t *testing.T) {
	router, _ := setupHandlerTest(t)

	tests := []struct {
		path string
		body string
	}{
		{"/api/achievements", `{"title": "Award", "description": "d", "icon": "fas fa-award", "year": 2023, "featured": true}`},
		{"/api/facilities", `{"name": "Library", "description": "d", "image": "/l.jpg", "category": "Academic", "featured": true}`},
		{"/api/alumni", `{"name": "Ada", "position": "P", "company": "C", "content": "c", "image": "/a.jpg", "graduationYear": 1995, "featured": true}`},
		{"/api/testimonials", `{"name": "Ada", "position": "P", "company": "C", "content": "c", "image": "/a.jpg", "featured": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, tt.path, tt.body).Code)

			w := do(t, router, http.MethodGet, tt.path+"/featured", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decodeBody[[]map[string]any](t, w), 1)

			w = do(t, router, http.MethodGet, tt.path+"/1", "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	w := do(t, router, http.MethodPost, "/api/achievements", `{"title": "Old", "description": "d", "icon": "i", "year": 1800}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "year", decodeBody[ErrorResponse](t, w).Errors[0].Field)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReady(t *testing.T) {
	router, _ := setupHandlerTest(t)

	w := do(t, router, http.MethodGet, "/healthz/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestDecodeKeepsJSONNumbers(t *testing.T) {
	h := NewHandler(memory.New())
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title": "t", "description": "d", "icon": "i", "year": 2024}`))
	w := httptest.NewRecorder()

	var dst campus.CreateAchievementRequest
	require.NoError(t, h.decode(w, req, &dst))
	require.NotNil(t, dst.Year)
	assert.Equal(t, 2024, *dst.Year)
}
