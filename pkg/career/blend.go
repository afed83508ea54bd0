package career

import (
	"fmt"
	"sort"
	"strings"
)

// Preference blending weights: resume fit stays dominant, survey alignment
// moves a score by at most ±0.125.
const (
	neutralAlignment    = 0.5
	adjustmentWeight    = 0.25
	alternativeBase     = 0.65
	alternativeMinAlign = 0.8
	alternativeMinLead  = 0.1
)

// prefOption maps one survey answer to career-path keywords and the reason
// shown to the user when it matches.
type prefOption struct {
	answer   string
	keywords []string
	reason   string
}

// prefRule covers one of the five survey questions that feed alignment.
type prefRule struct {
	question  string
	increment float64
	options   []prefOption
}

var prefRules = []prefRule{
	{
		question:  "1", // work environment
		increment: 0.10,
		options: []prefOption{
			{answer: "Remote", keywords: []string{"developer", "engineer", "writer", "designer"}, reason: "suits remote-friendly work"},
			{answer: "Office", keywords: []string{"manager", "coordinator", "analyst"}, reason: "matches office-based collaboration"},
			{answer: "Hybrid", keywords: []string{"manager", "engineer", "analyst"}, reason: "works well in a hybrid setup"},
			{answer: "Flexible", keywords: []string{"consultant", "designer", "writer"}, reason: "offers flexible working arrangements"},
		},
	},
	{
		question:  "3", // company size
		increment: 0.10,
		options: []prefOption{
			{answer: "Startup (1-50)", keywords: []string{"engineer", "developer", "designer", "marketing"}, reason: "thrives in startup environments"},
			{answer: "Small (51-200)", keywords: []string{"manager", "specialist", "coordinator"}, reason: "fits smaller close-knit companies"},
			{answer: "Medium (201-1000)", keywords: []string{"analyst", "manager", "engineer"}, reason: "common in mid-sized organizations"},
			{answer: "Large (1000+)", keywords: []string{"manager", "administrator", "analyst"}, reason: "well established in large enterprises"},
		},
	},
	{
		question:  "5", // work style
		increment: 0.10,
		options: []prefOption{
			{answer: "Independently", keywords: []string{"writer", "developer", "analyst", "designer"}, reason: "allows independent work"},
			{answer: "In teams", keywords: []string{"manager", "engineer", "coordinator"}, reason: "centers on teamwork"},
			{answer: "Mix of both", keywords: []string{"analyst", "consultant", "manager"}, reason: "balances solo and team work"},
		},
	},
	{
		question:  "6", // motivation
		increment: 0.15,
		options: []prefOption{
			{answer: "Financial growth", keywords: []string{"sales", "financial", "account"}, reason: "offers strong earning potential"},
			{answer: "Personal growth", keywords: []string{"engineer", "scientist", "developer"}, reason: "provides continuous learning"},
			{answer: "Impact on others", keywords: []string{"customer", "hr", "training", "success"}, reason: "directly helps other people"},
			{answer: "Creative expression", keywords: []string{"designer", "writer", "marketing", "content"}, reason: "rewards creative expression"},
		},
	},
	{
		question:  "8", // industry
		increment: 0.15,
		options: []prefOption{
			{answer: "Technology", keywords: []string{"engineer", "developer", "scientist", "devops", "cybersecurity", "systems"}, reason: "sits at the heart of the technology industry"},
			{answer: "Finance", keywords: []string{"financial", "analyst", "account"}, reason: "aligned with the finance industry"},
			{answer: "Education", keywords: []string{"training", "technical writer", "content"}, reason: "connected to education and enablement"},
			{answer: "Marketing", keywords: []string{"marketing", "social media", "content", "brand"}, reason: "aligned with the marketing industry"},
			{answer: "Healthcare", keywords: []string{"analyst", "manager", "coordinator"}, reason: "transfers into healthcare organizations"},
		},
	},
}

// preferenceAlternatives is the curated answer → career substitution table,
// checked in declared order.
var preferenceAlternatives = []struct {
	question string
	answer   string
	career   string
}{
	{question: "6", answer: "Creative expression", career: "Graphic Designer"},
	{question: "8", answer: "Marketing", career: "Digital Marketing Manager"},
	{question: "8", answer: "Finance", career: "Financial Analyst"},
	{question: "6", answer: "Impact on others", career: "Customer Success Manager"},
	{question: "1", answer: "Remote", career: "Web Developer"},
}

// BlendWithPreferences re-ranks base suggestions against survey answers.
// Output is deterministic for fixed input: same suggestions plus same answers
// always yield the same result.
func BlendWithPreferences(base []Suggestion, answers map[string]any) []Suggestion {
	out := make([]Suggestion, len(base))
	copy(out, base)

	for i := range out {
		alignment, reasons := preferenceAlignment(out[i].CareerPath, answers)
		adjustment := (alignment - neutralAlignment) * adjustmentWeight
		out[i].MatchScore = clamp01(out[i].MatchScore + adjustment)
		out[i].PreferenceMatch = preferenceMatchText(alignment, reasons)
	}

	if len(out) >= 3 {
		if alt, ok := pickAlternative(out, answers); ok {
			out[len(out)-1] = alt
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

// preferenceAlignment scores how well a career path matches the survey
// answers, starting neutral at 0.5 and clamped to [0,1].
func preferenceAlignment(careerPath string, answers map[string]any) (float64, []string) {
	lower := strings.ToLower(careerPath)
	alignment := neutralAlignment
	var reasons []string
	for _, rule := range prefRules {
		answer, ok := answers[rule.question]
		if !ok {
			continue
		}
		given := fmt.Sprint(answer)
		for _, opt := range rule.options {
			if opt.answer != given {
				continue
			}
			for _, kw := range opt.keywords {
				if strings.Contains(lower, kw) {
					alignment += rule.increment
					reasons = append(reasons, opt.reason)
					break
				}
			}
			break
		}
	}
	return clamp01(alignment), reasons
}

func preferenceMatchText(alignment float64, reasons []string) string {
	switch {
	case alignment > 0.7:
		return "Excellent fit: " + strings.Join(truncateStrings(reasons, 3), "; ")
	case alignment > 0.5:
		return "Good fit: " + strings.Join(truncateStrings(reasons, 2), "; ")
	default:
		return "Moderate fit with your stated preferences"
	}
}

// pickAlternative checks the curated substitution table for a strongly
// preference-aligned career that clearly beats the current last suggestion.
func pickAlternative(current []Suggestion, answers map[string]any) (Suggestion, bool) {
	last := current[len(current)-1]
	for _, alt := range preferenceAlternatives {
		answer, ok := answers[alt.question]
		if !ok || fmt.Sprint(answer) != alt.answer {
			continue
		}
		if hasCareerPath(current, alt.career) {
			continue
		}
		alignment, reasons := preferenceAlignment(alt.career, answers)
		if alignment <= alternativeMinAlign {
			continue
		}
		score := clamp01(alternativeBase + (alignment-neutralAlignment)*adjustmentWeight)
		if score <= last.MatchScore+alternativeMinLead {
			continue
		}
		return Suggestion{
			CareerPath:      alt.career,
			MatchScore:      score,
			Reasoning:       "Suggested from your survey preferences",
			KeySkills:       []string{"Communication", "Adaptability", "Continuous Learning"},
			PreferenceMatch: preferenceMatchText(alignment, reasons),
		}, true
	}
	return Suggestion{}, false
}

func truncateStrings(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
