package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var formatterSpinner = formatter.StartSpinner

// pathwiseHuhTheme returns a custom huh theme using the Gruvbox palette.
func pathwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(out io.Writer, groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(pathwiseHuhTheme()).
		WithShowHelp(false).
		WithOutput(out)
}

// validateWeeks accepts an integer within the project duration bounds.
func validateWeeks(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number of weeks")
	}
	return domain.ValidateDurationWeeks(v)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func required(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(title))
		}
		return nil
	}
}

// profileInput is the data collected by the profile form.
type profileInput struct {
	JobTitle   string
	ResumePath string
	GitHubUser string
}

// profileForm asks for the target role and the profile sources.
func profileForm(out io.Writer, in *profileInput) *huh.Form {
	return newForm(out,
		huh.NewGroup(
			huh.NewInput().
				Title("Target job title").
				Placeholder("Backend Engineer").
				Value(&in.JobTitle).
				Validate(required("Target job title")),
			huh.NewInput().
				Title("Resume").
				Description("Path or s3://bucket/key to a .pdf, .docx or .txt file. Blank to skip.").
				Value(&in.ResumePath),
			huh.NewInput().
				Title("GitHub username").
				Description("Username or profile URL. Blank to skip.").
				Value(&in.GitHubUser),
		),
	)
}

// durationsForm asks for a duration per project, prefilled with the
// current values.
func durationsForm(out io.Writer, projects []domain.Project, values []string) *huh.Form {
	inputs := make([]huh.Field, 0, len(projects))
	for i, p := range projects {
		values[i] = strconv.Itoa(p.DurationWeeks)
		inputs = append(inputs, huh.NewInput().
			Title(fmt.Sprintf("%d. %s", i+1, p.Title)).
			Description(fmt.Sprintf("Weeks (%d-%d)", domain.MinDurationWeeks, domain.MaxDurationWeeks)).
			Value(&values[i]).
			Validate(validateWeeks))
	}
	return newForm(out, huh.NewGroup(inputs...))
}

// dateForm asks for an optional YYYY-MM-DD date.
func dateForm(out io.Writer, title, placeholder string, value *string) *huh.Form {
	return newForm(out,
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(value).
				Validate(validateOptionalDate),
		),
	)
}

// textForm asks for a single line of text.
func textForm(out io.Writer, title, placeholder string, value *string) *huh.Form {
	return newForm(out,
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(value),
		),
	)
}

// confirmForm asks a yes/no question.
func confirmForm(out io.Writer, title string, result *bool) *huh.Form {
	return newForm(out,
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}

// selectForm asks the user to pick one of options.
func selectForm(out io.Writer, title string, options []huh.Option[string], result *string) *huh.Form {
	return newForm(out,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	)
}

type huhOption = huh.Option[string]

var newOption = huh.NewOption[string]

// parseWeeks converts validated form values to week counts.
func parseWeeks(values []string) ([]int, error) {
	weeks := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("project %d: enter a number of weeks", i+1)
		}
		weeks[i] = n
	}
	return weeks, nil
}
