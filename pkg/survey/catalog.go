package survey

// questions is the fixed 10-question bank. Loaded once, never mutated.
var questions = []Question{
	{
		ID:       1,
		Question: "What type of work environment do you prefer?",
		Type:     "multiple_choice",
		Options:  []string{"Remote", "Office", "Hybrid", "Flexible"},
	},
	{
		ID:       2,
		Question: "How important is work-life balance to you?",
		Type:     "scale",
		Min:      1,
		Max:      5,
		Labels:   []string{"Not important", "Very important"},
	},
	{
		ID:       3,
		Question: "What is your preferred company size?",
		Type:     "multiple_choice",
		Options:  []string{"Startup (1-50)", "Small (51-200)", "Medium (201-1000)", "Large (1000+)"},
	},
	{
		ID:       4,
		Question: "How comfortable are you with public speaking?",
		Type:     "scale",
		Min:      1,
		Max:      5,
		Labels:   []string{"Very uncomfortable", "Very comfortable"},
	},
	{
		ID:       5,
		Question: "Do you prefer working independently or in teams?",
		Type:     "multiple_choice",
		Options:  []string{"Independently", "In teams", "Mix of both"},
	},
	{
		ID:       6,
		Question: "What motivates you most in your career?",
		Type:     "multiple_choice",
		Options:  []string{"Financial growth", "Personal growth", "Impact on others", "Creative expression"},
	},
	{
		ID:       7,
		Question: "How important is job security to you?",
		Type:     "scale",
		Min:      1,
		Max:      5,
		Labels:   []string{"Not important", "Very important"},
	},
	{
		ID:       8,
		Question: "What industry interests you most?",
		Type:     "multiple_choice",
		Options:  []string{"Technology", "Healthcare", "Finance", "Education", "Marketing", "Other"},
	},
	{
		ID:       9,
		Question: "How willing are you to relocate for work?",
		Type:     "scale",
		Min:      1,
		Max:      5,
		Labels:   []string{"Not willing", "Very willing"},
	},
	{
		ID:       10,
		Question: "What is your ideal career timeline?",
		Type:     "multiple_choice",
		Options:  []string{"Immediate transition", "6 months", "1 year", "2+ years"},
	},
}

// Questions returns a copy of the survey question catalog.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
