package jobs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Listing is a synthesized job posting. Real board integration is out of
// scope; listings come from fixed deterministic templates per career path.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	URL          string    `json:"url"`
	CareerPath   string    `json:"career_path"`
	CreatedAt    time.Time `json:"timestamp"`
}

// MockListings returns the three fixed listings for a career path: a senior
// role, a junior role and a manager role, each with its own requirement set.
func MockListings(careerPath string) []Listing {
	now := time.Now().UTC()
	return []Listing{
		{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Senior %s", careerPath),
			Company:     "Tech Corp",
			Location:    "San Francisco, CA",
			Description: fmt.Sprintf("Exciting opportunity for an experienced %s to join our team...", careerPath),
			Requirements: []string{
				"5+ years experience",
				"Strong communication skills",
				"Team player",
			},
			SalaryRange: "$80,000 - $120,000",
			URL:         "https://example.com/job1",
			CareerPath:  careerPath,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Junior %s", careerPath),
			Company:     "Innovation Inc",
			Location:    "New York, NY",
			Description: fmt.Sprintf("Entry-level position for aspiring %s...", careerPath),
			Requirements: []string{
				"1-2 years experience",
				"Eagerness to learn",
				"Bachelor's degree",
			},
			SalaryRange: "$50,000 - $70,000",
			URL:         "https://example.com/job2",
			CareerPath:  careerPath,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("%s Manager", careerPath),
			Company:     "Growth LLC",
			Location:    "Remote",
			Description: fmt.Sprintf("Lead a team of %ss in this management role...", careerPath),
			Requirements: []string{
				"7+ years experience",
				"Management experience",
				"Leadership skills",
			},
			SalaryRange: "$100,000 - $140,000",
			URL:         "https://example.com/job3",
			CareerPath:  careerPath,
			CreatedAt:   now,
		},
	}
}
