package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nextier/cms-api/internal/core/ports"
)

// ContentHandler serves the public site content and the contact form.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Home handles GET /api/content/home.
//
// @Summary      Homepage hero copy
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.HomepageContent
// @Failure      500  {object}  errorResponse
// @Router       /api/content/home [get]
func (h *ContentHandler) Home(c echo.Context) error {
	home, err := h.service.Homepage(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, home)
}

// Services handles GET /api/content/services.
//
// @Summary      List service packages
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  errorResponse
// @Router       /api/content/services [get]
func (h *ContentHandler) Services(c echo.Context) error {
	services, err := h.service.Services(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// CaseStudies handles GET /api/content/case-studies.
//
// @Summary      List case studies
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.CaseStudy
// @Failure      500  {object}  errorResponse
// @Router       /api/content/case-studies [get]
func (h *ContentHandler) CaseStudies(c echo.Context) error {
	studies, err := h.service.CaseStudies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studies)
}

// Testimonials handles GET /api/content/testimonials.
//
// @Summary      List testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      500  {object}  errorResponse
// @Router       /api/content/testimonials [get]
func (h *ContentHandler) Testimonials(c echo.Context) error {
	testimonials, err := h.service.Testimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// OrganizationProfile handles GET /api/settings/org.
//
// @Summary      Organisation profile
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.OrganizationProfile
// @Failure      500  {object}  errorResponse
// @Router       /api/settings/org [get]
func (h *ContentHandler) OrganizationProfile(c echo.Context) error {
	profile, err := h.service.OrganizationProfile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// SubmitContact handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContentHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.SubmitContact(c.Request().Context(), toContactInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
