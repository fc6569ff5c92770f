package handler

import (
	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/core/ports"
)

// --- Request → domain / service input ---
//
// Required pointers have been checked by the validator before these run.

func toHomepage(r homepageRequest) domain.HomepageContent {
	return domain.HomepageContent{
		HeroHeading:    *r.HeroHeading,
		HeroSubheading: *r.HeroSubheading,
		PrimaryCTA:     *r.PrimaryCTA,
		SecondaryCTA:   *r.SecondaryCTA,
	}
}

func toService(r serviceRequest) domain.Service {
	return domain.Service{
		Key:          *r.Key,
		Title:        *r.Title,
		Subtitle:     r.Subtitle,
		Description:  *r.Description,
		Deliverables: orEmpty(r.Deliverables),
		Benefits:     orEmpty(r.Benefits),
	}
}

func toCaseStudy(r caseStudyRequest) domain.CaseStudy {
	return domain.CaseStudy{
		Title:    *r.Title,
		Industry: *r.Industry,
		Summary:  *r.Summary,
		Metrics:  orEmpty(r.Metrics),
	}
}

func toBlogPost(r blogPostRequest) domain.BlogPost {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return domain.BlogPost{
		Title:     *r.Title,
		Slug:      *r.Slug,
		Excerpt:   *r.Excerpt,
		Content:   *r.Content,
		Published: published,
	}
}

func toContactInput(r contactRequest) ports.ContactInput {
	return ports.ContactInput{
		Name:    *r.Name,
		Email:   *r.Email,
		Phone:   r.Phone,
		Message: *r.Message,
		Source:  r.Source,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
