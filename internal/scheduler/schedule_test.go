package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBuildSchedule_SequentialNonOverlap(t *testing.T) {
	projects := []domain.Project{
		{Title: "A", DurationWeeks: 2},
		{Title: "B", DurationWeeks: 3},
	}

	sched, err := BuildSchedule(projects, jan1)

	require.NoError(t, err)
	require.Len(t, sched.Entries, 2)
	assert.Equal(t, "2024-01-01", domain.FormatDate(sched.Entries[0].StartDate))
	assert.Equal(t, "2024-01-14", domain.FormatDate(sched.Entries[0].EndDate))
	assert.Equal(t, "2024-01-15", domain.FormatDate(sched.Entries[1].StartDate))
	assert.Equal(t, "2024-02-04", domain.FormatDate(sched.Entries[1].EndDate))
	assert.Equal(t, 5, sched.TotalWeeks)
	assert.Equal(t, sched.Entries[1].EndDate, sched.CompletionDate)
}

func TestBuildSchedule_Deterministic(t *testing.T) {
	projects := []domain.Project{
		{Title: "Build a REST API", DurationWeeks: 4},
		{Title: "Create a CLI tool", DurationWeeks: 1},
		{Title: "Deploy a microservice", DurationWeeks: 12},
	}

	first, err := BuildSchedule(projects, jan1)
	require.NoError(t, err)
	second, err := BuildSchedule(projects, jan1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSchedule_ReferenceTimeOfDayIgnored(t *testing.T) {
	projects := []domain.Project{{Title: "A", DurationWeeks: 1}}

	sched, err := BuildSchedule(projects, jan1.Add(15*time.Hour+42*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, jan1, sched.Entries[0].StartDate)
	assert.Equal(t, "2024-01-07", domain.FormatDate(sched.Entries[0].EndDate))
}

func TestBuildSchedule_Empty(t *testing.T) {
	sched, err := BuildSchedule(nil, jan1)

	require.NoError(t, err)
	assert.True(t, sched.Empty())
	assert.Zero(t, sched.TotalWeeks)
	assert.True(t, sched.CompletionDate.IsZero())
}

func TestBuildSchedule_RejectsOutOfRangeDuration(t *testing.T) {
	for _, weeks := range []int{0, 13} {
		_, err := BuildSchedule([]domain.Project{{Title: "A", DurationWeeks: weeks}}, jan1)
		assert.Error(t, err, "weeks=%d", weeks)
	}
}

func TestBuildSchedule_LeapYear(t *testing.T) {
	start := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)

	sched, err := BuildSchedule([]domain.Project{{Title: "A", DurationWeeks: 1}, {Title: "B", DurationWeeks: 1}}, start)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", domain.FormatDate(sched.Entries[0].EndDate))
	assert.Equal(t, "2024-03-04", domain.FormatDate(sched.Entries[1].StartDate))
}
