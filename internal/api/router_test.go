package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/infrastructure/db/memory"
)

func newTestServer(t *testing.T) (http.Handler, *memory.DocumentStore) {
	t.Helper()
	store := memory.NewDocumentStore()
	e, err := NewRouter(Deps{AppName: "NexTier Solutions API", Store: store, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return e, store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_Root(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"NexTier Solutions API","status":"ok"}`, rec.Body.String())
}

func TestRouter_EmptyStoreServesDefaults(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/content/home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultHomepage(), decode[domain.HomepageContent](t, rec))

	rec = do(t, h, http.MethodGet, "/api/content/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultServices(), decode[[]domain.Service](t, rec))

	rec = do(t, h, http.MethodGet, "/api/content/case-studies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultCaseStudies(), decode[[]domain.CaseStudy](t, rec))

	rec = do(t, h, http.MethodGet, "/api/content/testimonials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultTestimonials(), decode[[]domain.Testimonial](t, rec))

	rec = do(t, h, http.MethodGet, "/api/settings/org", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "NexTier Solutions",
		"tagline": "Empowering Digital Growth, Securely.",
		"email": "hello@nextier.solutions",
		"phone": "+1 (555) 010-2025",
		"address": "San Francisco, CA",
		"website": "https://nextier.solutions"
	}`, rec.Body.String())
}

func TestRouter_StoredDocumentsAreReflected(t *testing.T) {
	h, store := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.CreateDocument(ctx, domain.CollectionService, domain.Document{
		"key": "wps", "title": "Web", "description": "Sites", "deliverables": []string{"Home"},
	}))
	require.NoError(t, store.CreateDocument(ctx, domain.CollectionOrganizationProfile, domain.Document{
		"name": "Acme",
	}))

	rec := do(t, h, http.MethodGet, "/api/content/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"key": "wps", "title": "Web", "subtitle": null, "description": "Sites",
		"deliverables": ["Home"], "benefits": []
	}]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/settings/org", "")
	require.Equal(t, http.StatusOK, rec.Code)
	org := decode[domain.OrganizationProfile](t, rec)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "Empowering Digital Growth, Securely.", org.Tagline)
}

func TestRouter_ContactSubmission(t *testing.T) {
	h, store := newTestServer(t)

	before := time.Now().UTC()
	rec := do(t, h, http.MethodPost, "/api/contact", `{"name":"Jane Doe","email":"jane@example.com","message":"Hi"}`)
	after := time.Now().UTC()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	docs, err := store.GetDocuments(context.Background(), domain.CollectionContactSubmission, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "Jane Doe", doc["name"])
	assert.Equal(t, "website", doc["source"])
	assert.Nil(t, doc["phone"])

	created, ok := doc["created_at"].(time.Time)
	require.True(t, ok, "created_at has type %T", doc["created_at"])
	// BSON dates carry millisecond precision.
	assert.False(t, created.Before(before.Truncate(time.Millisecond)), "created_at %v before %v", created, before)
	assert.False(t, created.After(after), "created_at %v after %v", created, after)
	assert.Equal(t, time.UTC, created.Location())
}

func TestRouter_ContactInvalidEmailWritesNothing(t *testing.T) {
	h, store := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/contact", `{"name":"Jane Doe","email":"not-an-email","message":"Hi"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")

	rec = do(t, h, http.MethodPost, "/api/contact", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid payload"}`, rec.Body.String())

	docs, err := store.GetDocuments(context.Background(), domain.CollectionContactSubmission, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRouter_AdminLogin(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"email":"anyone@example.com","password":"whatever"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"demo-token"}`, rec.Body.String())
}

func TestRouter_DashboardCounts(t *testing.T) {
	h, store := newTestServer(t)
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, store.CreateDocument(ctx, domain.CollectionBlogPost, domain.Document{"title": "post"}))
	}
	require.NoError(t, store.CreateDocument(ctx, domain.CollectionService, domain.Document{"key": "wps"}))

	rec := do(t, h, http.MethodGet, "/api/admin/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"counts":{"services":1,"case_studies":0,"blog_posts":4,"contacts":0}}`, rec.Body.String())
}

func TestRouter_RepeatedCreateStoresDistinctDocuments(t *testing.T) {
	h, store := newTestServer(t)
	body := `{"title":"Acme","industry":"Retail","summary":"Faster checkout","metrics":["+10% sales"]}`

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodPost, "/api/admin/content/case-study", body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	}

	docs, err := store.GetDocuments(context.Background(), domain.CollectionCaseStudy, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.NotEqual(t, docs[0]["_id"], docs[1]["_id"])

	rec := do(t, h, http.MethodGet, "/api/content/case-studies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	studies := decode[[]domain.CaseStudy](t, rec)
	require.Len(t, studies, 2)
	assert.Equal(t, "Acme", studies[1].Title)
	assert.Equal(t, []string{"+10% sales"}, studies[1].Metrics)
}

func TestRouter_AdminCreateHomepageDoesNotReplace(t *testing.T) {
	h, store := newTestServer(t)
	first := `{"hero_heading":"One","hero_subheading":"s","primary_cta":"p","secondary_cta":"c"}`
	second := `{"hero_heading":"Two","hero_subheading":"s","primary_cta":"p","secondary_cta":"c"}`

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/admin/content/home", first).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/admin/content/home", second).Code)

	docs, err := store.GetDocuments(context.Background(), domain.CollectionHomepage, nil, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	rec := do(t, h, http.MethodGet, "/api/content/home", "")
	assert.Equal(t, "One", decode[domain.HomepageContent](t, rec).HeroHeading)
}

func TestRouter_AdminCreateBlogAndService(t *testing.T) {
	h, store := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/admin/content/blog", `{"title":"T","slug":"t","excerpt":"e","content":"c"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/admin/content/service", `{"key":"bas","title":"Automation","description":"d"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	posts, err := store.GetDocuments(context.Background(), domain.CollectionBlogPost, domain.Document{"slug": "t"}, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, true, posts[0]["published"])

	rec = do(t, h, http.MethodGet, "/api/content/services", "")
	services := decode[[]domain.Service](t, rec)
	require.Len(t, services, 1)
	assert.Equal(t, "bas", services[0].Key)
	assert.Equal(t, []string{}, services[0].Benefits)
}

func TestRouter_CORSEchoesArbitraryOrigin(t *testing.T) {
	h, _ := newTestServer(t)
	origin := "https://some-other-site.example"

	req := httptest.NewRequest(http.MethodGet, "/api/content/home", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	pre := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	pre.Header.Set("Origin", origin)
	pre.Header.Set("Access-Control-Request-Method", http.MethodPost)
	pre.Header.Set("Access-Control-Request-Headers", "X-Custom-Header, Content-Type")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, pre)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "X-Custom-Header, Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

type failingStore struct{ err error }

func (s failingStore) CreateDocument(context.Context, string, any) error { return s.err }

func (s failingStore) GetDocuments(context.Context, string, domain.Document, int) ([]domain.Document, error) {
	return nil, s.err
}

func (s failingStore) Ping(context.Context) error { return s.err }

func TestRouter_StoreFailureIs500(t *testing.T) {
	e, err := NewRouter(Deps{Store: failingStore{err: errors.New("server selection timeout")}, Logger: zerolog.Nop()})
	require.NoError(t, err)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/content/services", ""},
		{http.MethodGet, "/api/admin/dashboard", ""},
		{http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`},
	} {
		rec := do(t, e, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.path)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String(), tc.path)
	}

	rec := do(t, e, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/content/blog", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestRouter_MetricsExposed(t *testing.T) {
	h, _ := newTestServer(t)

	do(t, h, http.MethodGet, "/api/content/testimonials", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `cms_content_served_total{content="testimonials",source="default"}`)
	assert.Contains(t, body, "cms_http_requests_total")
}
