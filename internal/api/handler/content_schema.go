package handler

import "github.com/nextier/cms-api/internal/core/domain"

// Request bodies. Required fields are pointers so that presence is checked,
// not emptiness: an explicit "" is accepted, a missing or null field is not.

type homepageRequest struct {
	HeroHeading    *string `json:"hero_heading"    validate:"required"`
	HeroSubheading *string `json:"hero_subheading" validate:"required"`
	PrimaryCTA     *string `json:"primary_cta"     validate:"required"`
	SecondaryCTA   *string `json:"secondary_cta"   validate:"required"`
}

type serviceRequest struct {
	Key          *string  `json:"key"         validate:"required"`
	Title        *string  `json:"title"       validate:"required"`
	Subtitle     *string  `json:"subtitle"`
	Description  *string  `json:"description" validate:"required"`
	Deliverables []string `json:"deliverables"`
	Benefits     []string `json:"benefits"`
}

type caseStudyRequest struct {
	Title    *string  `json:"title"    validate:"required"`
	Industry *string  `json:"industry" validate:"required"`
	Summary  *string  `json:"summary"  validate:"required"`
	Metrics  []string `json:"metrics"`
}

type blogPostRequest struct {
	Title     *string `json:"title"   validate:"required"`
	Slug      *string `json:"slug"    validate:"required"`
	Excerpt   *string `json:"excerpt" validate:"required"`
	Content   *string `json:"content" validate:"required"`
	Published *bool   `json:"published"`
}

type contactRequest struct {
	Name    *string `json:"name"    validate:"required"`
	Email   *string `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message" validate:"required"`
	Source  *string `json:"source"`
}

type loginRequest struct {
	Email    *string `json:"email"    validate:"required,email"`
	Password *string `json:"password" validate:"required"`
}

// Responses.

type okResponse struct {
	OK bool `json:"ok"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type dashboardResponse struct {
	OK     bool                   `json:"ok"`
	Counts domain.DashboardCounts `json:"counts"`
}

type rootResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}
