package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/export"
)

// ValidatePlanDocument checks a plan for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanDocument(doc *export.PlanDocument) []error {
	var errs []error

	if len(doc.Projects) == 0 {
		errs = append(errs, fmt.Errorf("projects: at least one project is required"))
	}

	titles := make(map[string]bool, len(doc.Projects))
	var prevEnd time.Time
	for i, p := range doc.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		errs = append(errs, validateProject(prefix, p, titles)...)

		start, startErr := domain.ParseDate(p.StartDate)
		if startErr == nil && i > 0 && !prevEnd.IsZero() && !start.Equal(domain.AddDays(prevEnd, 1)) {
			errs = append(errs, fmt.Errorf("%s.start_date %q must follow the previous project's end date %q",
				prefix, p.StartDate, domain.FormatDate(prevEnd)))
		}
		prevEnd = time.Time{}
		if end, err := domain.ParseDate(p.EndDate); err == nil {
			prevEnd = end
		}
	}

	return errs
}

func validateProject(prefix string, p export.ProjectPlan, titles map[string]bool) []error {
	var errs []error

	title := strings.TrimSpace(p.Title)
	switch {
	case title == "":
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	case titles[title]:
		errs = append(errs, fmt.Errorf("%s.title %q is duplicated", prefix, title))
	default:
		titles[title] = true
	}

	weeksOK := true
	if err := domain.ValidateDurationWeeks(p.Weeks); err != nil {
		errs = append(errs, fmt.Errorf("%s.weeks: %w", prefix, err))
		weeksOK = false
	}

	start, err := domain.ParseDate(p.StartDate)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: invalid date format %q (expected YYYY-MM-DD)", prefix, p.StartDate))
	}
	end, endErr := domain.ParseDate(p.EndDate)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end_date: invalid date format %q (expected YYYY-MM-DD)", prefix, p.EndDate))
	}
	if err == nil && endErr == nil && weeksOK {
		if want := domain.AddDays(start, p.Weeks*7-1); !end.Equal(want) {
			errs = append(errs, fmt.Errorf("%s.end_date %q does not match %d weeks from %q (want %q)",
				prefix, p.EndDate, p.Weeks, p.StartDate, domain.FormatDate(want)))
		}
	}

	for j, d := range p.Days {
		errs = append(errs, validateDay(fmt.Sprintf("%s.days[%d]", prefix, j), d)...)
	}

	return errs
}

// validateDay accepts anything the daily-task parser emits, including day
// numbers past the project's duration.
func validateDay(prefix string, d export.DayPlan) []error {
	var errs []error

	if d.Day < 1 {
		errs = append(errs, fmt.Errorf("%s.day must be positive", prefix))
	}
	if d.Date != "" {
		if _, err := domain.ParseDate(d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, d.Date))
		}
	}
	if strings.TrimSpace(d.Task) == "" {
		errs = append(errs, fmt.Errorf("%s.task is required", prefix))
	}

	return errs
}
