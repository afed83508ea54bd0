package career

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Experience level labels as exposed to clients.
const (
	LevelEntry  = "Entry Level"
	LevelMid    = "Mid Level"
	LevelSenior = "Senior Level"
)

// keywordCategory is one of the five fixed signal categories the heuristic
// scorer counts over. Evaluation order is significant: it is the tie-break
// for extracted skills.
type keywordCategory struct {
	name     string
	keywords []string
	skills   []string
}

var heuristicCategories = []keywordCategory{
	{
		name: "technical",
		keywords: []string{
			"python", "java", "javascript", "software", "programming", "developer",
			"code", "api", "database", "cloud", "linux", "git", "docker", "react",
		},
		skills: []string{"Programming", "Software Development"},
	},
	{
		name: "business",
		keywords: []string{
			"management", "strategy", "sales", "marketing", "business",
			"stakeholder", "client", "revenue", "budget", "negotiation",
		},
		skills: []string{"Business Strategy", "Client Relations"},
	},
	{
		name: "creative",
		keywords: []string{
			"design", "creative", "content", "writing", "brand", "visual",
			"ui", "ux", "illustration", "storytelling",
		},
		skills: []string{"Design Thinking", "Content Creation"},
	},
	{
		name: "data",
		keywords: []string{
			"data", "analysis", "analytics", "statistics", "sql", "excel",
			"reporting", "visualization", "machine learning", "research",
		},
		skills: []string{"Data Analysis", "Statistical Reasoning"},
	},
	{
		name: "leadership",
		keywords: []string{
			"led", "lead", "team", "manager", "managed", "mentored",
			"supervised", "director", "coordinated", "leadership",
		},
		skills: []string{"Team Leadership", "Project Coordination"},
	},
}

// baselineSkills seed every extracted-skill list.
var baselineSkills = []string{"Communication", "Problem Solving", "Adaptability"}

// defaultSuggestions pad the candidate list, in declared order, whenever
// fewer than three category candidates fire.
var defaultSuggestions = []Suggestion{
	{
		CareerPath: "Business Analyst",
		MatchScore: 0.70,
		Reasoning:  "Analytical thinking and communication skills transfer well across industries",
		KeySkills:  []string{"Analysis", "Communication", "Problem Solving"},
	},
	{
		CareerPath: "Customer Success Manager",
		MatchScore: 0.65,
		Reasoning:  "Interpersonal skills and a service mindset fit customer-facing roles",
		KeySkills:  []string{"Communication", "Relationship Building", "Empathy"},
	},
	{
		CareerPath: "Operations Manager",
		MatchScore: 0.62,
		Reasoning:  "Organizational skills apply directly to process and operations work",
		KeySkills:  []string{"Organization", "Process Improvement", "Coordination"},
	},
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*year`)

// HeuristicAnalysis is the universal fallback analyzer: a deterministic,
// dependency-free substitute used whenever the external model is unreachable
// or returns unusable output. It always yields exactly three suggestions
// sorted by descending match score, between three and six extracted skills,
// and an experience level label.
func HeuristicAnalysis(resumeText string) (suggestions []Suggestion, extractedSkills []string, experienceLevel string) {
	lower := strings.ToLower(resumeText)

	// A keyword counts once per category no matter how often it repeats.
	scores := make([]int, len(heuristicCategories))
	for i, cat := range heuristicCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				scores[i]++
			}
		}
	}
	technical, business, creative, data, leadership := scores[0], scores[1], scores[2], scores[3], scores[4]

	experienceLevel = detectExperienceLevel(lower)

	if technical >= 3 {
		suggestions = append(suggestions, Suggestion{
			CareerPath: "Software Engineer",
			MatchScore: 0.85 + 0.02*float64(technical),
			Reasoning:  "Strong technical vocabulary and engineering background in the resume",
			KeySkills:  []string{"Programming", "Problem Solving", "System Design"},
		})
	}
	if data >= 2 || technical >= 2 {
		suggestions = append(suggestions, Suggestion{
			CareerPath: "Data Scientist",
			MatchScore: 0.80 + 0.02*float64(data),
			Reasoning:  "Analytical and technical signals suggest a fit for data-driven work",
			KeySkills:  []string{"Data Analysis", "SQL", "Statistics"},
		})
	}
	if business >= 2 || leadership >= 2 {
		suggestions = append(suggestions, Suggestion{
			CareerPath: "Product Manager",
			MatchScore: 0.78 + 0.02*float64(business),
			Reasoning:  "Business and leadership experience maps to product ownership",
			KeySkills:  []string{"Communication", "Stakeholder Management", "Strategic Thinking"},
		})
	}
	if creative >= 2 {
		suggestions = append(suggestions, Suggestion{
			CareerPath: "UX/UI Designer",
			MatchScore: 0.80 + 0.02*float64(creative),
			Reasoning:  "Creative and design-oriented experience stands out in the resume",
			KeySkills:  []string{"Design Thinking", "Visual Communication", "User Empathy"},
		})
	}
	if leadership >= 3 && experienceLevel == LevelSenior {
		suggestions = append(suggestions, Suggestion{
			CareerPath: "Project Manager",
			MatchScore: 0.82 + 0.02*float64(leadership),
			Reasoning:  "Senior-level leadership track record fits project management",
			KeySkills:  []string{"Team Leadership", "Planning", "Delegation"},
		})
	}

	for _, def := range defaultSuggestions {
		if len(suggestions) >= 3 {
			break
		}
		if !hasCareerPath(suggestions, def.CareerPath) {
			suggestions = append(suggestions, def)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	suggestions = suggestions[:3]
	for i := range suggestions {
		suggestions[i].MatchScore = clamp01(suggestions[i].MatchScore)
	}

	extractedSkills = append(extractedSkills, baselineSkills...)
	for i, cat := range heuristicCategories {
		if scores[i] == 0 {
			continue
		}
		for _, skill := range cat.skills {
			if len(extractedSkills) >= 6 {
				break
			}
			if !hasString(extractedSkills, skill) {
				extractedSkills = append(extractedSkills, skill)
			}
		}
	}

	return suggestions, extractedSkills, experienceLevel
}

// detectExperienceLevel looks for the first "<n> years" style mention.
// Absent a match the label defaults to mid level.
func detectExperienceLevel(lower string) string {
	m := yearsPattern.FindStringSubmatch(lower)
	if m == nil {
		return LevelMid
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too long for an int; read it as a very long tenure.
		return LevelSenior
	}
	switch {
	case years < 2:
		return LevelEntry
	case years < 5:
		return LevelMid
	default:
		return LevelSenior
	}
}

func hasCareerPath(list []Suggestion, path string) bool {
	for _, s := range list {
		if s.CareerPath == path {
			return true
		}
	}
	return false
}

func hasString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
