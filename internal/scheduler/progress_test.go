package scheduler

import (
	"testing"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoProjectSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	sched, err := BuildSchedule([]domain.Project{
		{Title: "A", DurationWeeks: 2},
		{Title: "B", DurationWeeks: 3},
	}, jan1)
	require.NoError(t, err)
	return sched
}

func TestComputeProgress_BeforeStart(t *testing.T) {
	p := ComputeProgress(twoProjectSchedule(t), jan1.AddDate(0, 0, -3))

	assert.True(t, p.NotStarted)
	assert.Nil(t, p.Active)
	assert.Equal(t, 35, p.DaysLeft)
}

func TestComputeProgress_InSecondProject(t *testing.T) {
	p := ComputeProgress(twoProjectSchedule(t), jan1.AddDate(0, 0, 15))

	require.NotNil(t, p.Active)
	assert.Equal(t, "B", p.Active.Project.Title)
	assert.Equal(t, 2, p.DayIndex)
	assert.Equal(t, 20, p.DaysLeft)
	assert.InDelta(t, 15.0/35.0*100, p.ElapsedPct, 0.001)
}

func TestComputeProgress_FirstAndLastDay(t *testing.T) {
	sched := twoProjectSchedule(t)

	first := ComputeProgress(sched, jan1)
	require.NotNil(t, first.Active)
	assert.Equal(t, 1, first.DayIndex)
	assert.Zero(t, first.ElapsedPct)

	last := ComputeProgress(sched, sched.CompletionDate)
	require.NotNil(t, last.Active)
	assert.Equal(t, 21, last.DayIndex)
	assert.Equal(t, 1, last.DaysLeft)
}

func TestComputeProgress_Finished(t *testing.T) {
	sched := twoProjectSchedule(t)

	p := ComputeProgress(sched, sched.CompletionDate.AddDate(0, 0, 1))

	assert.True(t, p.Finished)
	assert.Equal(t, 100.0, p.ElapsedPct)
}

func TestComputeProgress_EmptySchedule(t *testing.T) {
	p := ComputeProgress(domain.Schedule{}, jan1)
	assert.True(t, p.NotStarted)
}
