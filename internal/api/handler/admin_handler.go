package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nextier/cms-api/internal/core/ports"
)

// demoToken is handed out by Login to anyone with a well-formed request.
const demoToken = "demo-token"

// AdminHandler serves the demo admin panel. No route here is authenticated.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /api/admin/login. Credentials are validated for shape
// only and never checked.
//
// @Summary      Demo login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: demoToken})
}

// Dashboard handles GET /api/admin/dashboard.
//
// @Summary      Document counts per collection
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	counts, err := h.service.DashboardCounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{OK: true, Counts: counts})
}

// CreateHomepage handles POST /api/admin/content/home. The new document is
// added alongside any existing ones.
//
// @Summary      Create homepage content
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      homepageRequest  true  "Homepage content"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/content/home [post]
func (h *AdminHandler) CreateHomepage(c echo.Context) error {
	var req homepageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.CreateHomepage(c.Request().Context(), toHomepage(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// CreateService handles POST /api/admin/content/service.
//
// @Summary      Create a service
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      serviceRequest  true  "Service"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/content/service [post]
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.CreateService(c.Request().Context(), toService(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// CreateCaseStudy handles POST /api/admin/content/case-study.
//
// @Summary      Create a case study
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      caseStudyRequest  true  "Case study"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/content/case-study [post]
func (h *AdminHandler) CreateCaseStudy(c echo.Context) error {
	var req caseStudyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.CreateCaseStudy(c.Request().Context(), toCaseStudy(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// CreateBlogPost handles POST /api/admin/content/blog.
//
// @Summary      Create a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      blogPostRequest  true  "Blog post"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/content/blog [post]
func (h *AdminHandler) CreateBlogPost(c echo.Context) error {
	var req blogPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.CreateBlogPost(c.Request().Context(), toBlogPost(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
