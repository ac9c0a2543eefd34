package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// EventDuration is the nominal length of each calendar event.
const EventDuration = 2 * time.Hour

// uidNamespace scopes the name-based event UIDs.
var uidNamespace = uuid.MustParse("6f1d3c9e-8f0a-4d7e-9a52-2b8e4c1f7a10")

// CalendarOptions tunes calendar output.
type CalendarOptions struct {
	// Name is written as X-WR-CALNAME when set.
	Name string
	// Stamp is the DTSTAMP for every event; zero means now.
	Stamp time.Time
}

// EventUID returns a stable identifier for the first task with a given
// project title and day number. It does not depend on the date.
func EventUID(t domain.DailyTask) string {
	return eventUID(t, 0)
}

// EventUIDs returns one UID per task. A repeated day number within a
// project gets its occurrence count mixed in, so every task stays its
// own event.
func EventUIDs(tasks []domain.DailyTask) []string {
	type key struct {
		title string
		day   int
	}
	seen := make(map[key]int, len(tasks))
	uids := make([]string, len(tasks))
	for i, t := range tasks {
		k := key{t.Project.Title, t.DayIndex}
		uids[i] = eventUID(t, seen[k])
		seen[k]++
	}
	return uids
}

func eventUID(t domain.DailyTask, occurrence int) string {
	name := t.Project.Title + "\x00" + strconv.Itoa(t.DayIndex)
	if occurrence > 0 {
		name += "\x00" + strconv.Itoa(occurrence)
	}
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@pathwise"
}

// EventSummary is the display name of a task's event, e.g. "API: Day 3".
func EventSummary(t domain.DailyTask) string {
	return fmt.Sprintf("%s: %s", t.Project.Title, t.DayLabel())
}

// WriteCalendar writes one VEVENT per task.
func WriteCalendar(w io.Writer, tasks []domain.DailyTask, opts CalendarOptions) error {
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	stamp = stamp.UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pathwise//career planner//EN")
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	uids := EventUIDs(tasks)
	for i, t := range tasks {
		start := domain.Day(t.Date)
		event := cal.AddEvent(uids[i])
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(EventDuration))
		event.SetSummary(EventSummary(t))
		event.SetDescription(t.Description)
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
