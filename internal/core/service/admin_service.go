package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/core/ports"
)

// AdminService creates content documents and reports collection sizes. It
// shares the store helpers of ContentService.
type AdminService struct {
	content *ContentService
}

func NewAdminService(store ports.DocumentStore, logger zerolog.Logger) *AdminService {
	return &AdminService{content: NewContentService(store, logger)}
}

// DashboardCounts fetches each collection in full and reports its length.
func (s *AdminService) DashboardCounts(ctx context.Context) (domain.DashboardCounts, error) {
	var counts domain.DashboardCounts
	for _, c := range []struct {
		collection string
		dst        *int
	}{
		{domain.CollectionService, &counts.Services},
		{domain.CollectionCaseStudy, &counts.CaseStudies},
		{domain.CollectionBlogPost, &counts.BlogPosts},
		{domain.CollectionContactSubmission, &counts.Contacts},
	} {
		docs, err := s.content.fetch(ctx, c.collection, unlimited)
		if err != nil {
			return domain.DashboardCounts{}, fmt.Errorf("dashboard: %w", err)
		}
		*c.dst = len(docs)
	}
	return counts, nil
}

// CreateHomepage inserts a new homepage document. Existing ones are kept;
// readers see whichever the store returns first.
func (s *AdminService) CreateHomepage(ctx context.Context, content domain.HomepageContent) error {
	return s.create(ctx, domain.CollectionHomepage, content)
}

func (s *AdminService) CreateService(ctx context.Context, svc domain.Service) error {
	return s.create(ctx, domain.CollectionService, svc)
}

func (s *AdminService) CreateCaseStudy(ctx context.Context, cs domain.CaseStudy) error {
	return s.create(ctx, domain.CollectionCaseStudy, cs)
}

func (s *AdminService) CreateBlogPost(ctx context.Context, post domain.BlogPost) error {
	return s.create(ctx, domain.CollectionBlogPost, post)
}

func (s *AdminService) create(ctx context.Context, collection string, doc any) error {
	if err := s.content.insert(ctx, collection, doc); err != nil {
		return fmt.Errorf("create %s: %w", collection, err)
	}
	s.content.logger.Info().Str("collection", collection).Msg("content document created")
	return nil
}
