package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/survey"
)

type SurveyHandler struct {
	uc survey.UseCase
}

func NewSurveyHandler(uc survey.UseCase) *SurveyHandler { return &SurveyHandler{uc: uc} }

// Questions serves the fixed survey question catalog.
// @Summary List survey questions
// @Tags    survey
// @Produce json
// @Success 200 {object} map[string][]survey.Question
// @Router  /survey-questions [get]
func (h *SurveyHandler) Questions(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"questions": survey.Questions()})
}

type submitSurveyRequest struct {
	UserID    string         `json:"user_id"`
	Responses map[string]any `json:"responses"`
}

// Submit persists a survey response; the newest response per user wins.
// @Summary Submit survey answers
// @Tags    survey
// @Accept  json
// @Produce json
// @Param   input body submitSurveyRequest true "Survey answers keyed by question id"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /submit-survey [post]
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	var req submitSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	if _, err := h.uc.Submit(c.Context(), req.UserID, req.Responses); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save survey")
	}
	return presenter.Message(c, http.StatusOK, "Survey submitted successfully")
}
