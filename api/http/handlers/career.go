package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/career"
)

type CareerHandler struct {
	uc career.UseCase
}

func NewCareerHandler(uc career.UseCase) *CareerHandler { return &CareerHandler{uc: uc} }

// Paths serves the static career path catalog.
// @Summary List career paths
// @Tags    career
// @Produce json
// @Success 200 {object} map[string][]string
// @Router  /career-paths [get]
func (h *CareerHandler) Paths(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"career_paths": career.Paths()})
}

type selectCareerPathRequest struct {
	UserID     string `json:"user_id"`
	CareerPath string `json:"selected_career_path"`
}

// SelectPath records a career path choice. The path is free text and may
// fall outside the static catalog.
// @Summary Select a career path
// @Tags    career
// @Accept  json
// @Produce json
// @Param   input body selectCareerPathRequest true "Selection"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /select-career-path [post]
func (h *CareerHandler) SelectPath(c *fiber.Ctx) error {
	var req selectCareerPathRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.CareerPath) == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id and selected_career_path are required")
	}
	if err := h.uc.SelectPath(c.Context(), req.UserID, req.CareerPath); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to record selection")
	}
	return presenter.Message(c, http.StatusOK, "Career path selected successfully")
}

// CalculateScore assesses the user's latest resume analysis against one
// career path and stores the resulting score.
// @Summary Calculate a career score
// @Tags    career
// @Accept  x-www-form-urlencoded
// @Produce json
// @Param   user_id formData string true "User id"
// @Param   career_path formData string true "Career path"
// @Success 200 {object} career.Score
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /calculate-career-score [post]
func (h *CareerHandler) CalculateScore(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.FormValue("user_id"))
	careerPath := strings.TrimSpace(c.FormValue("career_path"))
	if userID == "" || careerPath == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id and career_path are required")
	}
	score, err := h.uc.CalculateScore(c.Context(), userID, careerPath)
	if err != nil {
		if errors.Is(err, career.ErrNoAnalysis) {
			return presenter.Error(c, http.StatusNotFound, "No resume analysis found for user")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to calculate career score")
	}
	return presenter.JSON(c, http.StatusOK, score)
}

// EnhancedSuggestions re-ranks the latest analysis with the latest survey.
// @Summary Survey-aware career suggestions
// @Tags    career
// @Accept  x-www-form-urlencoded
// @Produce json
// @Param   user_id formData string true "User id"
// @Success 200 {object} career.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /enhanced-career-suggestions [post]
func (h *CareerHandler) EnhancedSuggestions(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.FormValue("user_id"))
	if userID == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	analysis, err := h.uc.EnhancedSuggestions(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, career.ErrNoAnalysis):
			return presenter.Error(c, http.StatusNotFound, "No resume analysis found for user")
		case errors.Is(err, career.ErrNoSurvey):
			return presenter.Error(c, http.StatusNotFound, "No survey response found for user")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to build suggestions")
		}
	}
	return presenter.JSON(c, http.StatusOK, analysis)
}
