package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/progress"
)

type ProgressHandler struct {
	uc progress.UseCase
}

func NewProgressHandler(uc progress.UseCase) *ProgressHandler { return &ProgressHandler{uc: uc} }

type progressLogRequest struct {
	UserID              string   `json:"user_id"`
	CareerPath          string   `json:"career_path"`
	LogEntry            string   `json:"log_entry"`
	ActivitiesCompleted []string `json:"activities_completed"`
	SkillsImproved      []string `json:"skills_improved"`
}

// AddLog appends a progress log entry. When a career score exists for the
// (user, career path) pair it is bumped by 2 points per completed activity
// and 3 per improved skill, capped at 100; otherwise only the log is stored.
// @Summary Log career progress
// @Tags    progress
// @Accept  json
// @Produce json
// @Param   input body progressLogRequest true "Progress log"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /progress-log [post]
func (h *ProgressHandler) AddLog(c *fiber.Ctx) error {
	var req progressLogRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.CareerPath) == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id and career_path are required")
	}
	_, err := h.uc.Record(c.Context(), progress.Log{
		UserID:              req.UserID,
		CareerPath:          req.CareerPath,
		LogEntry:            req.LogEntry,
		ActivitiesCompleted: req.ActivitiesCompleted,
		SkillsImproved:      req.SkillsImproved,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to log progress")
	}
	return presenter.Message(c, http.StatusOK, "Progress logged successfully")
}

// UserProgress returns the latest career score and up to ten recent logs.
// @Summary Get user progress
// @Tags    progress
// @Produce json
// @Param   user_id path string true "User id"
// @Success 200 {object} progress.Summary
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /user-progress/{user_id} [get]
func (h *ProgressHandler) UserProgress(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	summary, err := h.uc.Summary(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load progress")
	}
	return presenter.JSON(c, http.StatusOK, summary)
}
