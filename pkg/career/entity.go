package career

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoAnalysis signals a score or suggestion request for a user who
	// never uploaded a resume. Reported to the client as-is.
	ErrNoAnalysis = errors.New("no resume analysis found for user")
	// ErrNoSurvey signals an enhanced-suggestions request before any survey
	// was submitted.
	ErrNoSurvey = errors.New("no survey response found for user")
	// ErrNoScore is returned by score lookups for a (user, career path) pair
	// that has no score yet.
	ErrNoScore = errors.New("no career score found")
)

// Suggestion is one ranked career recommendation inside an analysis.
type Suggestion struct {
	CareerPath      string   `json:"career_path"`
	MatchScore      float64  `json:"match_score"`
	Reasoning       string   `json:"reasoning"`
	KeySkills       []string `json:"key_skills"`
	PreferenceMatch string   `json:"preference_match,omitempty"`
}

// Analysis is one resume analysis run. Records are append-only; the active
// one per user is the latest by timestamp.
type Analysis struct {
	ID              uuid.UUID    `json:"id"`
	UserID          string       `json:"user_id"`
	Suggestions     []Suggestion `json:"career_suggestions"`
	ExtractedSkills []string     `json:"extracted_skills"`
	ExperienceLevel string       `json:"experience_level"`
	// ResumeText is kept for re-analysis (enhanced suggestions) and is never
	// serialized to clients.
	ResumeText string    `json:"-"`
	CreatedAt  time.Time `json:"timestamp"`
}

// Score tracks how well a user currently matches one career path.
// The current value for a (user, career path) pair is the latest row;
// progress events mutate it in place.
type Score struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	CareerPath      string    `json:"career_path"`
	CurrentScore    float64   `json:"current_score"`
	MaxScore        float64   `json:"max_score"`
	SkillGaps       []string  `json:"skill_gaps"`
	StrengthAreas   []string  `json:"strength_areas"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"timestamp"`
}

// Selection is an append-only record of a chosen career path. The path is
// free text and does not have to belong to the static catalog.
type Selection struct {
	UserID     string    `json:"user_id"`
	CareerPath string    `json:"selected_career_path"`
	CreatedAt  time.Time `json:"timestamp"`
}

// AnalysisRepository is the persistence port for resume analyses.
type AnalysisRepository interface {
	Create(ctx context.Context, a Analysis) error
	// LatestByUser returns ErrNoAnalysis when the user has none.
	LatestByUser(ctx context.Context, userID string) (Analysis, error)
}

// ScoreRepository is the persistence port for career scores.
type ScoreRepository interface {
	Create(ctx context.Context, s Score) error
	// LatestByUser returns ErrNoScore when the user has no scores at all.
	LatestByUser(ctx context.Context, userID string) (Score, error)
	// ApplyProgress atomically adds delta to the current score of the latest
	// (user, career path) row, capped at the row's max score. It reports
	// whether a row existed; a missing row is a no-op, not an error.
	ApplyProgress(ctx context.Context, userID, careerPath string, delta float64) (bool, error)
}

// SelectionRepository is the persistence port for career path selections.
type SelectionRepository interface {
	Create(ctx context.Context, sel Selection) error
}

// SurveyReader exposes the latest survey answers for a user.
// Implemented by the survey use case.
type SurveyReader interface {
	LatestAnswers(ctx context.Context, userID string) (map[string]any, bool, error)
}
