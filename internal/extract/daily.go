package extract

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

var (
	// ErrUnparseablePlan indicates a narrative contained no "Day N:" lines.
	// Callers should offer regeneration rather than treat it as fatal.
	ErrUnparseablePlan = errors.New("no day-by-day tasks found in plan")

	// ErrTaskCountMismatch indicates the parsed task count differs from
	// the 7-per-week count the project duration implies.
	ErrTaskCountMismatch = errors.New("daily task count does not match project duration")
)

// dayLine matches "Day 3: task", tolerating markdown bold around the label
// ("**Day 3:** task", "**Day 3**: task").
var dayLine = regexp.MustCompile(`\bDay (\d+)(?:\*\*)?:(?:\*\*)?[ \t]*(.*)`)

// ParseDailyTasks extracts every "Day N:" line from a project narrative, in
// document order. The narrative's own numbering is kept as-is, so gaps and
// repeats pass through; each task is dated start + (N-1) days. A label
// with no task text after it is skipped.
func ParseDailyTasks(narrative string, project domain.Project, start time.Time) ([]domain.DailyTask, error) {
	var tasks []domain.DailyTask
	for _, m := range dayLine.FindAllStringSubmatch(narrative, -1) {
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 {
			continue
		}
		desc := cleanDescription(m[2])
		if desc == "" {
			continue
		}
		tasks = append(tasks, domain.DailyTask{
			Date:        domain.AddDays(start, day-1),
			DayIndex:    day,
			Project:     project,
			Description: desc,
		})
	}
	if len(tasks) == 0 {
		return nil, ErrUnparseablePlan
	}
	return tasks, nil
}

func cleanDescription(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*_"))
}

// ValidateTaskCount compares the parsed task count with 7*weeks. It never
// modifies tasks.
func ValidateTaskCount(tasks []domain.DailyTask, weeks int) error {
	want := weeks * 7
	if len(tasks) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrTaskCountMismatch, len(tasks), want)
	}
	return nil
}

// DayIndexAnomalies reports day numbers that appear more than once and day
// numbers missing between 1 and the highest day seen.
func DayIndexAnomalies(tasks []domain.DailyTask) (duplicates, missing []int) {
	counts := make(map[int]int, len(tasks))
	maxDay := 0
	for _, t := range tasks {
		counts[t.DayIndex]++
		if t.DayIndex > maxDay {
			maxDay = t.DayIndex
		}
	}
	for day, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, day)
		}
	}
	sort.Ints(duplicates)
	for day := 1; day <= maxDay; day++ {
		if counts[day] == 0 {
			missing = append(missing, day)
		}
	}
	return duplicates, missing
}
