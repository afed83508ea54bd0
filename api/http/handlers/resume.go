package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/career"
)

type ResumeHandler struct {
	uc career.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(uc career.UseCase) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxBytes: 15 << 20} // 15MB
}

// Upload accepts a resume file (PDF or TXT), extracts its text, analyzes it
// and returns the stored analysis. The external model is consulted first;
// on any failure the deterministic local scorer supplies the result.
// @Summary Upload and analyze a resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   user_id formData string true "User id"
// @Param   file formData file true "Resume file (.pdf or .txt)"
// @Success 200 {object} career.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /upload-resume [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.FormValue("user_id"))
	if userID == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or txt)")
	}
	// Reject unsupported extensions before touching the file content.
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".txt" {
		return presenter.Error(c, http.StatusBadRequest, "Only PDF and TXT files are supported")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	analysis, err := h.uc.AnalyzeUpload(c.Context(), userID, fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("analysis failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, analysis)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
