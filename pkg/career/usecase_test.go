package career

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjsmylie/NextObjective/pkg/llm"
	"github.com/mjsmylie/NextObjective/pkg/resume"
)

type memAnalysisRepo struct{ items []Analysis }

func (m *memAnalysisRepo) Create(_ context.Context, a Analysis) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memAnalysisRepo) LatestByUser(_ context.Context, userID string) (Analysis, error) {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].UserID == userID {
			return m.items[i], nil
		}
	}
	return Analysis{}, ErrNoAnalysis
}

type memScoreRepo struct{ items []Score }

func (m *memScoreRepo) Create(_ context.Context, s Score) error {
	m.items = append(m.items, s)
	return nil
}

func (m *memScoreRepo) LatestByUser(_ context.Context, userID string) (Score, error) {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].UserID == userID {
			return m.items[i], nil
		}
	}
	return Score{}, ErrNoScore
}

func (m *memScoreRepo) ApplyProgress(_ context.Context, userID, careerPath string, delta float64) (bool, error) {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].UserID == userID && m.items[i].CareerPath == careerPath {
			next := m.items[i].CurrentScore + delta
			if next > m.items[i].MaxScore {
				next = m.items[i].MaxScore
			}
			m.items[i].CurrentScore = next
			return true, nil
		}
	}
	return false, nil
}

type memSelectionRepo struct{ items []Selection }

func (m *memSelectionRepo) Create(_ context.Context, sel Selection) error {
	m.items = append(m.items, sel)
	return nil
}

type stubSurveys struct {
	answers map[string]any
	found   bool
	err     error
}

func (s *stubSurveys) LatestAnswers(context.Context, string) (map[string]any, bool, error) {
	return s.answers, s.found, s.err
}

type fixture struct {
	svc        UseCase
	analyses   *memAnalysisRepo
	scores     *memScoreRepo
	selections *memSelectionRepo
}

func newFixture(model llm.ChatModel, surveys SurveyReader) fixture {
	analyses := &memAnalysisRepo{}
	scores := &memScoreRepo{}
	selections := &memSelectionRepo{}
	if surveys == nil {
		surveys = &stubSurveys{}
	}
	return fixture{
		svc:        NewService(analyses, scores, selections, surveys, model),
		analyses:   analyses,
		scores:     scores,
		selections: selections,
	}
}

func TestAnalyzeUploadModelFailureFallsBack(t *testing.T) {
	model := &llm.Stub{Err: errors.New("connection refused")}
	f := newFixture(model, nil)

	a, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	assert.Equal(t, 1, model.Calls)
	require.Len(t, a.Suggestions, 3)
	assert.Equal(t, "Software Engineer", a.Suggestions[0].CareerPath)
	assert.Equal(t, LevelSenior, a.ExperienceLevel)
	require.Len(t, f.analyses.items, 1)
	assert.Equal(t, technicalResume, f.analyses.items[0].ResumeText)
}

func TestAnalyzeUploadUnparseableReplyFallsBack(t *testing.T) {
	model := &llm.Stub{Reply: "I am sorry, I cannot produce JSON today."}
	f := newFixture(model, nil)

	a, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(businessResume))
	require.NoError(t, err)

	require.Len(t, a.Suggestions, 3)
	assert.True(t, hasCareerPath(a.Suggestions, "Product Manager"))
}

func TestAnalyzeUploadUsesModelReply(t *testing.T) {
	// Four suggestions, one out-of-range score, wrapped in prose: the reply
	// must be brace-extracted, clamped, sorted and truncated to three.
	model := &llm.Stub{Reply: `Here is the analysis you asked for:
{
  "career_suggestions": [
    {"career_path": "DevOps Engineer", "match_score": 0.7, "reasoning": "infra background", "key_skills": ["Docker"]},
    {"career_path": "Site Reliability Engineer", "match_score": 1.5, "reasoning": "on-call experience", "key_skills": ["Monitoring"]},
    {"career_path": "Backend Developer", "match_score": 0.8, "reasoning": "API work"},
    {"career_path": "QA Engineer", "match_score": 0.4, "reasoning": "testing", "key_skills": ["Selenium"]}
  ],
  "extracted_skills": ["Kubernetes", "Go"],
  "experience_level": "Senior Level"
}
Hope this helps!`}
	f := newFixture(model, nil)

	a, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte("some resume text"))
	require.NoError(t, err)

	require.Len(t, a.Suggestions, 3)
	assert.Equal(t, "Site Reliability Engineer", a.Suggestions[0].CareerPath)
	assert.Equal(t, 1.0, a.Suggestions[0].MatchScore)
	assert.Equal(t, "Backend Developer", a.Suggestions[1].CareerPath)
	assert.NotNil(t, a.Suggestions[1].KeySkills)
	assert.Equal(t, "DevOps Engineer", a.Suggestions[2].CareerPath)
	assert.Equal(t, []string{"Kubernetes", "Go"}, a.ExtractedSkills)
	assert.Equal(t, "Senior Level", a.ExperienceLevel)
}

func TestAnalyzeUploadRejectsUnsupportedFormat(t *testing.T) {
	f := newFixture(&llm.Stub{}, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.docx", []byte("whatever"))
	require.ErrorIs(t, err, resume.ErrUnsupportedFormat)
	assert.Empty(t, f.analyses.items)
}

func TestAnalyzeUploadRejectsEmptyContent(t *testing.T) {
	f := newFixture(&llm.Stub{}, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte("   \n\t "))
	require.Error(t, err)
	assert.Empty(t, f.analyses.items)
}

func TestEnhancedSuggestionsRequiresAnalysis(t *testing.T) {
	f := newFixture(&llm.Stub{}, &stubSurveys{answers: map[string]any{"1": "Remote"}, found: true})

	_, err := f.svc.EnhancedSuggestions(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestEnhancedSuggestionsRequiresSurvey(t *testing.T) {
	model := &llm.Stub{Err: errors.New("down")}
	f := newFixture(model, &stubSurveys{found: false})

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	_, err = f.svc.EnhancedSuggestions(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoSurvey)
}

func TestEnhancedSuggestionsModelFailureBlendsHeuristic(t *testing.T) {
	model := &llm.Stub{Err: errors.New("down")}
	surveys := &stubSurveys{
		answers: map[string]any{"1": "Remote", "6": "Personal growth", "8": "Technology"},
		found:   true,
	}
	f := newFixture(model, surveys)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	a, err := f.svc.EnhancedSuggestions(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, a.Suggestions, 3)
	for _, s := range a.Suggestions {
		assert.NotEmpty(t, s.PreferenceMatch)
		assert.GreaterOrEqual(t, s.MatchScore, 0.0)
		assert.LessOrEqual(t, s.MatchScore, 1.0)
	}
	// Both runs are persisted as separate records.
	assert.Len(t, f.analyses.items, 2)
}

func TestCalculateScoreTransportFailure(t *testing.T) {
	model := &llm.Stub{Err: errors.New("down")}
	f := newFixture(model, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	sc, err := f.svc.CalculateScore(context.Background(), "u1", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, 65.0, sc.CurrentScore)
	assert.Equal(t, 100.0, sc.MaxScore)
	assert.Equal(t, []string{"Technical Skills", "Industry Experience"}, sc.SkillGaps)
	assert.Equal(t, []string{"Communication", "Problem Solving"}, sc.StrengthAreas)
	assert.Len(t, sc.Recommendations, 3)
	assert.Len(t, f.scores.items, 1)
}

func TestCalculateScoreParseFailure(t *testing.T) {
	model := &llm.Stub{Reply: "not json at all"}
	f := newFixture(model, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	sc, err := f.svc.CalculateScore(context.Background(), "u1", "Data Scientist")
	require.NoError(t, err)

	assert.Equal(t, 70.0, sc.CurrentScore)
	assert.Equal(t, 100.0, sc.MaxScore)
	assert.Equal(t, []string{"Industry Knowledge", "Advanced Skills", "Leadership Experience"}, sc.SkillGaps)
}

func TestCalculateScoreUsesModelReply(t *testing.T) {
	model := &llm.Stub{Reply: `{"current_score": 82, "skill_gaps": ["Kubernetes"], "strength_areas": ["Go"], "recommendations": ["Ship something"]}`}
	f := newFixture(model, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	sc, err := f.svc.CalculateScore(context.Background(), "u1", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, 82.0, sc.CurrentScore)
	assert.Equal(t, []string{"Kubernetes"}, sc.SkillGaps)
	assert.Equal(t, "Software Engineer", sc.CareerPath)
}

func TestCalculateScoreKeepsZeroScore(t *testing.T) {
	// A reply that genuinely rates the candidate at zero is a valid
	// assessment, not a parse failure.
	model := &llm.Stub{Reply: `{"current_score": 0, "skill_gaps": ["Everything"], "strength_areas": [], "recommendations": ["Start from the basics"]}`}
	f := newFixture(model, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	sc, err := f.svc.CalculateScore(context.Background(), "u1", "Brain Surgeon")
	require.NoError(t, err)

	assert.Equal(t, 0.0, sc.CurrentScore)
	assert.Equal(t, []string{"Everything"}, sc.SkillGaps)
}

func TestCalculateScoreMissingScoreField(t *testing.T) {
	model := &llm.Stub{Reply: `{"skill_gaps": ["X"], "strength_areas": ["Y"], "recommendations": ["Z"]}`}
	f := newFixture(model, nil)

	_, err := f.svc.AnalyzeUpload(context.Background(), "u1", "resume.txt", []byte(technicalResume))
	require.NoError(t, err)

	sc, err := f.svc.CalculateScore(context.Background(), "u1", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, 70.0, sc.CurrentScore)
	assert.Equal(t, []string{"Industry Knowledge", "Advanced Skills", "Leadership Experience"}, sc.SkillGaps)
}

func TestCalculateScoreWithoutAnalysis(t *testing.T) {
	f := newFixture(&llm.Stub{}, nil)

	_, err := f.svc.CalculateScore(context.Background(), "ghost", "Software Engineer")
	assert.ErrorIs(t, err, ErrNoAnalysis)
	assert.Empty(t, f.scores.items)
}

func TestSelectPath(t *testing.T) {
	f := newFixture(&llm.Stub{}, nil)

	require.NoError(t, f.svc.SelectPath(context.Background(), "u1", "Data Scientist"))
	require.Len(t, f.selections.items, 1)
	assert.Equal(t, "u1", f.selections.items[0].UserID)
	assert.Equal(t, "Data Scientist", f.selections.items[0].CareerPath)
	assert.False(t, f.selections.items[0].CreatedAt.IsZero())
}

func TestDecodeJSONObject(t *testing.T) {
	var out map[string]any

	assert.True(t, decodeJSONObject(`{"a": 1}`, &out))
	assert.True(t, decodeJSONObject("```json\n{\"a\": 1}\n```", &out))
	assert.True(t, decodeJSONObject(`prefix {"a": 1} suffix`, &out))
	assert.False(t, decodeJSONObject(`no braces here`, &out))
	assert.False(t, decodeJSONObject(``, &out))
}
