package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/core/ports"
	"github.com/nextier/cms-api/internal/metrics"
)

// unlimited asks the store for every matching document.
const unlimited = 0

type ContentService struct {
	store  ports.DocumentStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewContentService(store ports.DocumentStore, logger zerolog.Logger) *ContentService {
	return &ContentService{store: store, logger: logger, now: time.Now}
}

// Homepage returns the first stored homepage document, or the built-in copy.
func (s *ContentService) Homepage(ctx context.Context) (domain.HomepageContent, error) {
	docs, err := s.fetch(ctx, domain.CollectionHomepage, 1)
	if err != nil {
		return domain.HomepageContent{}, err
	}
	if len(docs) == 0 {
		served("home", metrics.SourceDefault)
		return domain.DefaultHomepage(), nil
	}
	served("home", metrics.SourceStore)
	return domain.HomepageFromDocument(docs[0]), nil
}

func (s *ContentService) Services(ctx context.Context) ([]domain.Service, error) {
	docs, err := s.fetch(ctx, domain.CollectionService, unlimited)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		served("services", metrics.SourceDefault)
		return domain.DefaultServices(), nil
	}
	served("services", metrics.SourceStore)
	out := make([]domain.Service, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ServiceFromDocument(d))
	}
	return out, nil
}

func (s *ContentService) CaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	docs, err := s.fetch(ctx, domain.CollectionCaseStudy, unlimited)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		served("case_studies", metrics.SourceDefault)
		return domain.DefaultCaseStudies(), nil
	}
	served("case_studies", metrics.SourceStore)
	out := make([]domain.CaseStudy, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.CaseStudyFromDocument(d))
	}
	return out, nil
}

func (s *ContentService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	docs, err := s.fetch(ctx, domain.CollectionTestimonial, unlimited)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		served("testimonials", metrics.SourceDefault)
		return domain.DefaultTestimonials(), nil
	}
	served("testimonials", metrics.SourceStore)
	out := make([]domain.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.TestimonialFromDocument(d))
	}
	return out, nil
}

// OrganizationProfile returns the stored profile with absent fields filled
// from the defaults, or the default profile when none is stored.
func (s *ContentService) OrganizationProfile(ctx context.Context) (domain.OrganizationProfile, error) {
	docs, err := s.fetch(ctx, domain.CollectionOrganizationProfile, 1)
	if err != nil {
		return domain.OrganizationProfile{}, err
	}
	if len(docs) == 0 {
		served("org", metrics.SourceDefault)
		return domain.DefaultOrganizationProfile(), nil
	}
	served("org", metrics.SourceStore)
	return domain.OrganizationProfileFromDocument(docs[0]), nil
}

// SubmitContact stores a contact form submission. CreatedAt is always set
// here, never taken from the caller.
func (s *ContentService) SubmitContact(ctx context.Context, in ports.ContactInput) error {
	source := in.Source
	if source == nil {
		def := domain.DefaultContactSource
		source = &def
	}

	sub := domain.ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Source:    source,
		CreatedAt: s.now().UTC(),
	}
	if err := s.insert(ctx, domain.CollectionContactSubmission, sub); err != nil {
		return fmt.Errorf("submit contact: %w", err)
	}

	s.logger.Info().
		Str("source", *source).
		Time("created_at", sub.CreatedAt).
		Msg("contact submission stored")
	return nil
}

func (s *ContentService) fetch(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	docs, err := s.store.GetDocuments(ctx, collection, domain.Document{}, limit)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	return docs, nil
}

func (s *ContentService) insert(ctx context.Context, collection string, doc any) error {
	if err := s.store.CreateDocument(ctx, collection, doc); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("create").Inc()
		return err
	}
	metrics.DocumentsCreatedTotal.WithLabelValues(collection).Inc()
	return nil
}

func served(content, source string) {
	metrics.ContentServedTotal.WithLabelValues(content, source).Inc()
}
