package ports

import (
	"context"

	"github.com/nextier/cms-api/internal/core/domain"
)

// ContactInput is the DTO passed from the transport layer to ContentService.
type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
	Source  *string // nil = DefaultContactSource
}

// ContentService serves site content with store-or-default semantics and
// records contact submissions.
type ContentService interface {
	Homepage(ctx context.Context) (domain.HomepageContent, error)
	Services(ctx context.Context) ([]domain.Service, error)
	CaseStudies(ctx context.Context) ([]domain.CaseStudy, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
	OrganizationProfile(ctx context.Context) (domain.OrganizationProfile, error)
	SubmitContact(ctx context.Context, in ContactInput) error
}

// AdminService backs the demo admin panel. None of its operations are
// authenticated.
type AdminService interface {
	DashboardCounts(ctx context.Context) (domain.DashboardCounts, error)
	CreateHomepage(ctx context.Context, content domain.HomepageContent) error
	CreateService(ctx context.Context, svc domain.Service) error
	CreateCaseStudy(ctx context.Context, cs domain.CaseStudy) error
	CreateBlogPost(ctx context.Context, post domain.BlogPost) error
}
