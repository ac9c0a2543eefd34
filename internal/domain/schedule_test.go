package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 3, 3, 23, 45, 0, 0, loc)

	got := Day(in)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestAddDays_CrossesMonthAndYear(t *testing.T) {
	start := time.Date(2025, 12, 30, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02", FormatDate(AddDays(start, 3)))
	assert.Equal(t, "2025-12-30", FormatDate(AddDays(start, 0)))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", FormatDate(got))

	_, err = ParseDate("28/02/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestSchedule_EntryFor(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	s := Schedule{Entries: []ScheduleEntry{
		{Project: Project{Title: "API", DurationWeeks: 1}, StartDate: start, EndDate: AddDays(start, 6)},
	}}

	e, ok := s.EntryFor("API")
	require.True(t, ok)
	assert.Equal(t, start, e.StartDate)

	_, ok = s.EntryFor("Missing")
	assert.False(t, ok)
	assert.False(t, s.Empty())
	assert.True(t, Schedule{}.Empty())
}

func TestDailyTask_DayLabel(t *testing.T) {
	assert.Equal(t, "Day 3", DailyTask{DayIndex: 3}.DayLabel())
}
