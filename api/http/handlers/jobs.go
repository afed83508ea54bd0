package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/jobs"
)

type JobsHandler struct{}

func NewJobsHandler() *JobsHandler { return &JobsHandler{} }

// MockJobs serves three synthesized listings for a career path.
// @Summary Mock job listings for a career path
// @Tags    jobs
// @Produce json
// @Param   career_path path string true "Career path"
// @Success 200 {object} map[string][]jobs.Listing
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /mock-jobs/{career_path} [get]
func (h *JobsHandler) MockJobs(c *fiber.Ctx) error {
	raw := c.Params("career_path")
	careerPath, err := url.PathUnescape(raw)
	if err != nil {
		careerPath = raw
	}
	// Older clients double-encode spaces.
	careerPath = strings.ReplaceAll(careerPath, "%20", " ")
	if strings.TrimSpace(careerPath) == "" {
		return presenter.Error(c, http.StatusBadRequest, "career_path is required")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobs": jobs.MockListings(careerPath)})
}
