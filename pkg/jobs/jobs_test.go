package jobs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockListings(t *testing.T) {
	listings := MockListings("Data Scientist")
	require.Len(t, listings, 3)

	assert.Equal(t, "Senior Data Scientist", listings[0].Title)
	assert.Equal(t, "Junior Data Scientist", listings[1].Title)
	assert.Equal(t, "Data Scientist Manager", listings[2].Title)

	seen := map[uuid.UUID]bool{}
	for _, l := range listings {
		assert.Equal(t, "Data Scientist", l.CareerPath)
		assert.NotEmpty(t, l.Company)
		assert.NotEmpty(t, l.Location)
		assert.NotEmpty(t, l.SalaryRange)
		assert.NotEmpty(t, l.Requirements)
		assert.Contains(t, l.URL, "https://example.com/")
		assert.False(t, l.CreatedAt.IsZero())
		assert.False(t, seen[l.ID], "listing ids must be unique")
		seen[l.ID] = true
	}

	// Each role carries its own requirement set.
	assert.NotEqual(t, listings[0].Requirements, listings[1].Requirements)
	assert.NotEqual(t, listings[1].Requirements, listings[2].Requirements)
	assert.Contains(t, listings[0].Requirements, "5+ years experience")
	assert.Contains(t, listings[1].Requirements, "Eagerness to learn")
	assert.Contains(t, listings[2].Requirements, "Management experience")
}
