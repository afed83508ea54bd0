package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjsmylie/NextObjective/pkg/career"
	"github.com/mjsmylie/NextObjective/pkg/jobs"
	"github.com/mjsmylie/NextObjective/pkg/user"
)

type careerUCStub struct {
	analyzeCalls int
	analysis     career.Analysis
}

func (s *careerUCStub) AnalyzeUpload(_ context.Context, _, _ string, _ []byte) (career.Analysis, error) {
	s.analyzeCalls++
	return s.analysis, nil
}

func (s *careerUCStub) EnhancedSuggestions(context.Context, string) (career.Analysis, error) {
	return s.analysis, nil
}

func (s *careerUCStub) CalculateScore(context.Context, string, string) (career.Score, error) {
	return career.Score{}, nil
}

func (s *careerUCStub) SelectPath(context.Context, string, string) error { return nil }

func multipartBody(t *testing.T, userID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if userID != "" {
		require.NoError(t, w.WriteField("user_id", userID))
	}
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v), "body: %s", b)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	uc := &careerUCStub{}
	app := fiber.New()
	app.Post("/api/upload-resume", NewResumeHandler(uc).Upload)

	buf, contentType := multipartBody(t, "u1", "resume.docx", []byte("binary junk"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Only PDF and TXT files are supported", body.Detail)
	assert.Equal(t, 0, uc.analyzeCalls, "rejected files must not reach analysis")
}

func TestUploadRequiresUserID(t *testing.T) {
	app := fiber.New()
	app.Post("/api/upload-resume", NewResumeHandler(&careerUCStub{}).Upload)

	buf, contentType := multipartBody(t, "", "resume.txt", []byte("text"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "user_id is required", body.Detail)
}

func TestUploadTxtAccepted(t *testing.T) {
	uc := &careerUCStub{analysis: career.Analysis{
		UserID:          "u1",
		ExperienceLevel: "Mid Level",
		Suggestions:     []career.Suggestion{{CareerPath: "Software Engineer", MatchScore: 0.9}},
	}}
	app := fiber.New()
	app.Post("/api/upload-resume", NewResumeHandler(uc).Upload)

	buf, contentType := multipartBody(t, "u1", "resume.txt", []byte("python developer, 3 years"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, uc.analyzeCalls)

	var body career.Analysis
	decodeBody(t, resp, &body)
	assert.Equal(t, "u1", body.UserID)
	require.Len(t, body.Suggestions, 1)
	assert.Equal(t, "Software Engineer", body.Suggestions[0].CareerPath)
}

func TestMockJobsDecodesEncodedPath(t *testing.T) {
	app := fiber.New()
	app.Get("/api/mock-jobs/:career_path", NewJobsHandler().MockJobs)

	req := httptest.NewRequest(http.MethodGet, "/api/mock-jobs/Data%20Scientist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Jobs []jobs.Listing `json:"jobs"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Jobs, 3)
	assert.Equal(t, "Senior Data Scientist", body.Jobs[0].Title)
	assert.Equal(t, "Data Scientist", body.Jobs[0].CareerPath)
}

type userUCStub struct {
	u   user.User
	err error
}

func (s *userUCStub) Register(context.Context, string) (user.User, error) { return s.u, s.err }

func (s *userUCStub) Get(context.Context, uuid.UUID) (user.User, error) { return s.u, s.err }

func TestGetUserByID(t *testing.T) {
	id := uuid.New()
	app := fiber.New()
	app.Get("/api/users/:user_id", NewUsersHandler(&userUCStub{u: user.User{ID: id}}).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body user.User
	decodeBody(t, resp, &body)
	assert.Equal(t, id, body.ID)
}

func TestGetUserRejectsMalformedID(t *testing.T) {
	app := fiber.New()
	app.Get("/api/users/:user_id", NewUsersHandler(&userUCStub{}).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/api/users/:user_id", NewUsersHandler(&userUCStub{err: user.ErrNotFound}).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "User not found", body.Detail)
}

func TestRootBanner(t *testing.T) {
	app := fiber.New()
	app.Get("/api/", NewHealthHandler(nil).Root)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "NextObjective API is running", body.Message)
}
