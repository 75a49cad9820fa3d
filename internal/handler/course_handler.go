package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dive-course-api/internal/dto"
	"github.com/noah-isme/dive-course-api/internal/middleware"
	"github.com/noah-isme/dive-course-api/internal/models"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
	"github.com/noah-isme/dive-course-api/pkg/response"
)

type courseService interface {
	Search(ctx context.Context, filter models.CourseFilter) ([]models.Course, bool, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	Related(ctx context.Context, id string) ([]models.Course, error)
	Featured(ctx context.Context) ([]models.Course, error)
	Facets(ctx context.Context) dto.SearchFacets
	FilterMode() models.FilterMode
}

// CourseHandler exposes the course catalog over HTTP.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Search godoc
// @Summary Search courses
// @Description Malformed query values are ignored. In passthrough mode the full catalog is returned.
// @Tags Courses
// @Produce json
// @Param location query string false "Location substring"
// @Param area query string false "Areas, comma separated"
// @Param type query string false "Course type slug"
// @Param date query string false "Preferred date (YYYY-MM-DD)"
// @Param minPrice query int false "Minimum price in yen"
// @Param maxPrice query int false "Maximum price in yen"
// @Param level query string false "Levels, comma separated"
// @Param sort query string false "recommended, price-asc, price-desc or rating-desc"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) Search(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	// Every field binds as text, so a failed bind only means an empty query.
	var query dto.CourseSearchQuery
	_ = c.ShouldBindQuery(&query)

	courses, cacheHit, err := h.service.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetMeta(c, "count", len(courses))
	middleware.SetMeta(c, "filter_mode", string(h.service.FilterMode()))
	response.JSON(c, http.StatusOK, courses, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Course detail
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	course, err := h.service.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Related godoc
// @Summary Related courses
// @Description The first four catalog courses other than the given one.
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/related [get]
func (h *CourseHandler) Related(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	courses, err := h.service.Related(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, map[string]interface{}{"count": len(courses)})
}

// Featured godoc
// @Summary Featured courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses/featured [get]
func (h *CourseHandler) Featured(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	courses, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, map[string]interface{}{"count": len(courses)})
}

// Facets godoc
// @Summary Search filter options
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/facets [get]
func (h *CourseHandler) Facets(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.OK(c, h.service.Facets(c.Request.Context()))
}

// Register mounts the course routes on group.
func (h *CourseHandler) Register(group *gin.RouterGroup) {
	courses := group.Group("/courses")
	courses.GET("", h.Search)
	courses.GET("/featured", h.Featured)
	courses.GET("/:id", h.Get)
	courses.GET("/:id/related", h.Related)
	group.GET("/catalog/facets", h.Facets)
}
