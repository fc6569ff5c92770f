package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nextier/cms-api/internal/core/domain"
)

func newAdminSvc(store *stubStore) *AdminService {
	return NewAdminService(store, zerolog.Nop())
}

func TestAdminService_DashboardCounts(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CollectionService] = []domain.Document{{}, {}}
	store.docs[domain.CollectionBlogPost] = []domain.Document{{}, {}, {}}
	store.docs[domain.CollectionContactSubmission] = []domain.Document{{}}

	got, err := newAdminSvc(store).DashboardCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.DashboardCounts{Services: 2, CaseStudies: 0, BlogPosts: 3, Contacts: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for _, g := range store.gets {
		if g.limit != unlimited {
			t.Errorf("dashboard must fetch %s in full, got limit %d", g.collection, g.limit)
		}
	}
}

func TestAdminService_DashboardCounts_StoreError(t *testing.T) {
	store := newStubStore()
	store.getErr = errors.New("down")

	if _, err := newAdminSvc(store).DashboardCounts(context.Background()); !errors.Is(err, store.getErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAdminService_CreatesInsertUnmodified(t *testing.T) {
	store := newStubStore()
	svc := newAdminSvc(store)
	ctx := context.Background()

	home := domain.HomepageContent{HeroHeading: "h", HeroSubheading: "s", PrimaryCTA: "p", SecondaryCTA: "c"}
	post := domain.BlogPost{Title: "t", Slug: "s", Excerpt: "e", Content: "c", Published: true}
	cs := domain.CaseStudy{Title: "t", Industry: "i", Summary: "s", Metrics: []string{}}
	srv := domain.Service{Key: "wps", Title: "t", Description: "d", Deliverables: []string{}, Benefits: []string{}}

	if err := svc.CreateHomepage(ctx, home); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateBlogPost(ctx, post); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateCaseStudy(ctx, cs); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateService(ctx, srv); err != nil {
		t.Fatal(err)
	}

	wantCollections := []string{
		domain.CollectionHomepage,
		domain.CollectionBlogPost,
		domain.CollectionCaseStudy,
		domain.CollectionService,
	}
	if len(store.inserted) != len(wantCollections) {
		t.Fatalf("expected %d inserts, got %d", len(wantCollections), len(store.inserted))
	}
	for i, c := range wantCollections {
		if store.inserted[i].collection != c {
			t.Errorf("insert %d: got collection %q, want %q", i, store.inserted[i].collection, c)
		}
	}
	if store.inserted[0].doc.(domain.HomepageContent) != home {
		t.Errorf("homepage document was modified: %+v", store.inserted[0].doc)
	}
	if store.inserted[1].doc.(domain.BlogPost) != post {
		t.Errorf("blog document was modified: %+v", store.inserted[1].doc)
	}
}

func TestAdminService_RepeatedCreateInsertsTwice(t *testing.T) {
	store := newStubStore()
	svc := newAdminSvc(store)
	post := domain.BlogPost{Title: "t", Slug: "same", Excerpt: "e", Content: "c", Published: true}

	for i := 0; i < 2; i++ {
		if err := svc.CreateBlogPost(context.Background(), post); err != nil {
			t.Fatal(err)
		}
	}
	if len(store.inserted) != 2 {
		t.Fatalf("expected no dedup, got %d inserts", len(store.inserted))
	}
}

func TestAdminService_CreateStoreError(t *testing.T) {
	store := newStubStore()
	store.createErr = errors.New("write failed")

	err := newAdminSvc(store).CreateService(context.Background(), domain.Service{Key: "wps"})
	if !errors.Is(err, store.createErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
