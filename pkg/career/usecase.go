package career

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mjsmylie/NextObjective/pkg/llm"
	"github.com/mjsmylie/NextObjective/pkg/resume"
)

// UseCase — career guidance scenarios built on resume analyses.
type UseCase interface {
	// AnalyzeUpload extracts resume text, analyzes it and appends a new
	// Analysis for the user.
	AnalyzeUpload(ctx context.Context, userID, filename string, data []byte) (Analysis, error)
	// EnhancedSuggestions re-ranks the latest analysis against the latest
	// survey response and appends the result as a new Analysis.
	EnhancedSuggestions(ctx context.Context, userID string) (Analysis, error)
	// CalculateScore assesses the latest analysis against one career path
	// and appends a new Score.
	CalculateScore(ctx context.Context, userID, careerPath string) (Score, error)
	// SelectPath records a career path choice.
	SelectPath(ctx context.Context, userID, careerPath string) error
}

type service struct {
	analyses   AnalysisRepository
	scores     ScoreRepository
	selections SelectionRepository
	surveys    SurveyReader
	llm        llm.ChatModel
	maxChars   int
}

func NewService(analyses AnalysisRepository, scores ScoreRepository, selections SelectionRepository, surveys SurveyReader, model llm.ChatModel) UseCase {
	return &service{
		analyses:   analyses,
		scores:     scores,
		selections: selections,
		surveys:    surveys,
		llm:        model,
		maxChars:   12_000,
	}
}

const analyzeSystemPrompt = "You are a career counselor and resume analysis expert. Analyze resumes and provide career suggestions based on skills, experience, and background."

const assessSystemPrompt = "You are a career assessment expert. Evaluate how well a candidate's resume matches a specific career path."

// llmAnalysis mirrors the JSON shape the model is asked to produce.
type llmAnalysis struct {
	CareerSuggestions []Suggestion `json:"career_suggestions"`
	ExtractedSkills   []string     `json:"extracted_skills"`
	ExperienceLevel   string       `json:"experience_level"`
}

// llmAssessment mirrors the JSON shape for a single-path assessment.
// CurrentScore is a pointer so a legitimate zero score stays distinguishable
// from a reply that lacks the field.
type llmAssessment struct {
	CurrentScore    *float64 `json:"current_score"`
	SkillGaps       []string `json:"skill_gaps"`
	StrengthAreas   []string `json:"strength_areas"`
	Recommendations []string `json:"recommendations"`
}

// assessment is the usable result of one career path evaluation.
type assessment struct {
	CurrentScore    float64
	SkillGaps       []string
	StrengthAreas   []string
	Recommendations []string
}

func (s *service) AnalyzeUpload(ctx context.Context, userID, filename string, data []byte) (Analysis, error) {
	text, err := resume.ExtractText(filename, data)
	if err != nil {
		return Analysis{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Analysis{}, errors.New("empty resume content")
	}

	suggestions, skills, level := s.analyzeText(ctx, text)
	a := Analysis{
		ID:              uuid.New(),
		UserID:          userID,
		Suggestions:     suggestions,
		ExtractedSkills: skills,
		ExperienceLevel: level,
		ResumeText:      text,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.analyses.Create(ctx, a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func (s *service) EnhancedSuggestions(ctx context.Context, userID string) (Analysis, error) {
	prev, err := s.analyses.LatestByUser(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	answers, found, err := s.surveys.LatestAnswers(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	if !found {
		return Analysis{}, ErrNoSurvey
	}

	text := prev.ResumeText
	if strings.TrimSpace(text) == "" {
		// Older records may predate resume text retention.
		text = summarizeAnalysis(prev)
	}

	suggestions, skills, level, ok := s.analyzeWithPreferences(ctx, text, answers)
	if !ok {
		// The external model is unavailable: blend a fresh heuristic result.
		base, fbSkills, fbLevel := HeuristicAnalysis(text)
		suggestions = BlendWithPreferences(base, answers)
		skills = fbSkills
		level = fbLevel
	}

	a := Analysis{
		ID:              uuid.New(),
		UserID:          userID,
		Suggestions:     suggestions,
		ExtractedSkills: skills,
		ExperienceLevel: level,
		ResumeText:      prev.ResumeText,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.analyses.Create(ctx, a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func (s *service) CalculateScore(ctx context.Context, userID, careerPath string) (Score, error) {
	latest, err := s.analyses.LatestByUser(ctx, userID)
	if err != nil {
		return Score{}, err
	}

	res := s.assess(ctx, summarizeAnalysis(latest), careerPath)
	sc := Score{
		ID:              uuid.New(),
		UserID:          userID,
		CareerPath:      careerPath,
		CurrentScore:    res.CurrentScore,
		MaxScore:        100,
		SkillGaps:       res.SkillGaps,
		StrengthAreas:   res.StrengthAreas,
		Recommendations: res.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.scores.Create(ctx, sc); err != nil {
		return Score{}, err
	}
	return sc, nil
}

func (s *service) SelectPath(ctx context.Context, userID, careerPath string) error {
	return s.selections.Create(ctx, Selection{
		UserID:     userID,
		CareerPath: careerPath,
		CreatedAt:  time.Now().UTC(),
	})
}

// analyzeText asks the model first and falls back to the deterministic
// heuristic on any failure or unusable reply.
func (s *service) analyzeText(ctx context.Context, text string) ([]Suggestion, []string, string) {
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	user := fmt.Sprintf(`Analyze this resume and provide career suggestions:

%s

Please provide your analysis in the following JSON format:
{
  "career_suggestions": [
    {"career_path": "Career Title", "match_score": 0.85, "reasoning": "Explanation of why this career fits", "key_skills": ["skill1", "skill2", "skill3"]}
  ],
  "extracted_skills": ["skill1", "skill2", "skill3", "skill4"],
  "experience_level": "Entry Level/Mid Level/Senior Level"
}

Provide 3-5 career suggestions ranked by match score (0.0-1.0). Consider the person's background, skills, and experience.`, text)

	raw, err := s.llm.Ask(ctx, analyzeSystemPrompt, user)
	if err == nil {
		var parsed llmAnalysis
		if decodeJSONObject(raw, &parsed) && len(parsed.CareerSuggestions) > 0 {
			return normalizeSuggestions(parsed.CareerSuggestions), parsed.ExtractedSkills, parsed.ExperienceLevel
		}
	}
	return HeuristicAnalysis(text)
}

// analyzeWithPreferences asks the model for a survey-aware analysis. The
// boolean result reports whether the reply was usable.
func (s *service) analyzeWithPreferences(ctx context.Context, text string, answers map[string]any) ([]Suggestion, []string, string, bool) {
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, nil, "", false
	}
	user := fmt.Sprintf(`Analyze this resume together with the candidate's survey preferences and provide career suggestions:

Resume:
%s

Survey answers (question id to answer):
%s

Please provide your analysis in the following JSON format:
{
  "career_suggestions": [
    {"career_path": "Career Title", "match_score": 0.85, "reasoning": "Explanation of why this career fits", "key_skills": ["skill1", "skill2"], "preference_match": "How this aligns with the stated preferences"}
  ],
  "extracted_skills": ["skill1", "skill2", "skill3"],
  "experience_level": "Entry Level/Mid Level/Senior Level"
}

Weight resume fit as the dominant factor and preference alignment as a minority adjustment. Provide exactly 3 suggestions ranked by match score (0.0-1.0).`, text, answersJSON)

	raw, err := s.llm.Ask(ctx, analyzeSystemPrompt, user)
	if err != nil {
		return nil, nil, "", false
	}
	var parsed llmAnalysis
	if !decodeJSONObject(raw, &parsed) || len(parsed.CareerSuggestions) == 0 {
		return nil, nil, "", false
	}
	return normalizeSuggestions(parsed.CareerSuggestions), parsed.ExtractedSkills, parsed.ExperienceLevel, true
}

// assess scores one career path. Transport and parse failures degrade to
// fixed constant assessments; this method never fails.
func (s *service) assess(ctx context.Context, resumeSummary, careerPath string) assessment {
	user := fmt.Sprintf(`Evaluate this resume for the career path: %s

Resume:
%s

Provide a detailed assessment in JSON format:
{
  "current_score": 75,
  "skill_gaps": ["gap1", "gap2", "gap3"],
  "strength_areas": ["strength1", "strength2"],
  "recommendations": ["Take online course in X", "Gain experience in Y through volunteering", "Network with professionals in Z field"]
}

Score should be 0-100 based on how well the resume matches the ideal candidate for %s.`, careerPath, resumeSummary, careerPath)

	raw, err := s.llm.Ask(ctx, assessSystemPrompt, user)
	if err != nil {
		return assessment{
			CurrentScore:  65,
			SkillGaps:     []string{"Technical Skills", "Industry Experience"},
			StrengthAreas: []string{"Communication", "Problem Solving"},
			Recommendations: []string{
				"Complete online courses",
				"Build a portfolio",
				"Join professional communities",
			},
		}
	}
	var parsed llmAssessment
	if !decodeJSONObject(raw, &parsed) || parsed.CurrentScore == nil {
		return assessment{
			CurrentScore:  70,
			SkillGaps:     []string{"Industry Knowledge", "Advanced Skills", "Leadership Experience"},
			StrengthAreas: []string{"Communication", "Basic Skills"},
			Recommendations: []string{
				"Take relevant online courses",
				"Gain hands-on experience through projects",
				"Network with industry professionals",
			},
		}
	}
	return assessment{
		CurrentScore:    *parsed.CurrentScore,
		SkillGaps:       parsed.SkillGaps,
		StrengthAreas:   parsed.StrengthAreas,
		Recommendations: parsed.Recommendations,
	}
}

// summarizeAnalysis renders a stored analysis back into assessment input.
func summarizeAnalysis(a Analysis) string {
	return fmt.Sprintf("Skills: %s\nExperience Level: %s",
		strings.Join(a.ExtractedSkills, ", "), a.ExperienceLevel)
}

// normalizeSuggestions enforces the invariants the rest of the system relies
// on: exactly three suggestions, scores clamped to [0,1], descending order.
func normalizeSuggestions(in []Suggestion) []Suggestion {
	out := make([]Suggestion, len(in))
	copy(out, in)
	for i := range out {
		out[i].MatchScore = clamp01(out[i].MatchScore)
		if out[i].KeySkills == nil {
			out[i].KeySkills = []string{}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// decodeJSONObject extracts the outermost JSON object from a model reply that
// may be wrapped in prose or markdown fences.
func decodeJSONObject(raw string, v any) bool {
	raw = strings.TrimSpace(raw)
	if json.Unmarshal([]byte(raw), v) == nil {
		return true
	}
	i := strings.Index(raw, "{")
	j := strings.LastIndex(raw, "}")
	if i < 0 || j <= i {
		return false
	}
	return json.Unmarshal([]byte(raw[i:j+1]), v) == nil
}
