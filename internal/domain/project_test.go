package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDurationWeeks(t *testing.T) {
	cases := []struct {
		weeks int
		ok    bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{12, true},
		{13, false},
		{-1, false},
	}
	for _, tc := range cases {
		err := ValidateDurationWeeks(tc.weeks)
		if tc.ok {
			assert.NoError(t, err, "weeks=%d", tc.weeks)
		} else {
			assert.Error(t, err, "weeks=%d", tc.weeks)
		}
	}
}

func TestProject_Validate(t *testing.T) {
	require.NoError(t, NewProject("Build a REST API").Validate())
	assert.Error(t, Project{Title: "  ", DurationWeeks: 2}.Validate())
	assert.Error(t, Project{Title: "x y z", DurationWeeks: 0}.Validate())
}

func TestProjectsFromTitles_CapsAtMaxProjects(t *testing.T) {
	projects := ProjectsFromTitles([]string{"a b c", "d e f", "g h i", "j k l"})
	require.Len(t, projects, MaxProjects)
	for _, p := range projects {
		assert.Equal(t, DefaultDurationWeeks, p.DurationWeeks)
	}
	assert.Equal(t, 14, projects[0].Days())
}

func TestDay_TruncatesToUTCDate(t *testing.T) {
	in := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Day(in))
	assert.Equal(t, "2024-03-10", FormatDate(AddDays(in, 1)))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("03/09/2024")
	assert.Error(t, err)
}

func TestScheduleEntryFor(t *testing.T) {
	s := Schedule{Entries: []ScheduleEntry{{Project: NewProject("Deploy a microservice")}}}
	_, ok := s.EntryFor("Deploy a microservice")
	assert.True(t, ok)
	_, ok = s.EntryFor("missing")
	assert.False(t, ok)
	assert.False(t, s.Empty())
}
