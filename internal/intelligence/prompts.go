package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// mentorSystemPrompt frames every generation call.
const mentorSystemPrompt = `You are a career mentor AI called Pathwise.
You help people compare their skills with what employers ask for and plan
short, practical learning projects. Be concrete and concise. Never invent
facts about the person beyond what you are given.`

func resumeSkillsPrompt(resumeText string) string {
	return "Analyze this resume and extract all technical skills, programming languages, " +
		"frameworks, tools, certifications, and soft skills mentioned.\n\n" +
		"Resume:\n" + resumeText + "\n\n" +
		"Return only a comma-separated list of skills. Be comprehensive but concise."
}

func repoSkillsPrompt(repoNames []string) string {
	return "Based on these GitHub project names:\n" + strings.Join(repoNames, ", ") + "\n" +
		"List the technical skills, frameworks, and tools the person is proficient in. " +
		"Return only a comma-separated list."
}

func marketPrompt(jobTitle string, snippets []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide a concise overview of the current job market for the role '%s'. ", jobTitle)
	b.WriteString("Include:\n1. Top technical & soft skills in demand\n2. Common tools or certifications\n" +
		"3. Industries or domains hiring for this role\nRespond in Markdown bullet points.")
	if len(snippets) > 0 {
		b.WriteString("\n\nUse these excerpts from current job postings as evidence:\n")
		for i, s := range snippets {
			fmt.Fprintf(&b, "\n[%d] %s\n", i+1, s)
		}
	}
	return b.String()
}

func reportPrompt(skills domain.SkillSet, jobTitle, market string) string {
	return fmt.Sprintf("My current skills: %s\n\nJob market overview for %s:\n%s\n\n", skills, jobTitle, market) +
		"Compare my skills with job market requirements and return three clear sections:\n" +
		"### Matched Skills\n- ...\n\n" +
		"### Missing Skills\n- ...\n\n" +
		"### Suggested Projects\n" +
		fmt.Sprintf("Provide exactly **%d** unique and practical projects aligned with the missing skills. ", domain.MaxProjects) +
		"Use this consistent format:\n" +
		"1. Project Title — one-line description (skill learned)\n" +
		"2. ...\n3. ...\n" +
		"Make sure each title and description are on the same line."
}

func dailyPlanPrompt(p domain.Project, jobTitle string) string {
	days := p.Days()
	var b strings.Builder
	b.WriteString("Create a detailed daily learning plan.\n\n")
	fmt.Fprintf(&b, "Project: %s\nDuration: %d weeks (%d days)\nTarget Role: %s\n\n", p.Title, p.DurationWeeks, days, jobTitle)
	b.WriteString("Create a day-by-day breakdown with specific tasks. Use EXACTLY this format:\n\n" +
		"**Day 1:** [Specific actionable task]\n\n" +
		"**Day 2:** [Specific actionable task]\n\n" +
		"**Day 3:** [Specific actionable task]\n\n" +
		"And so on...\n\n" +
		"IMPORTANT FORMATTING RULES:\n" +
		"- Each day MUST be on its own line with double line breaks\n" +
		"- Use **Day X:** format (bold with markdown)\n" +
		"- Keep each task to 1-2 sentences maximum\n" +
		"- DO NOT write paragraphs - one task per day per line\n\n" +
		"Guidelines for content:\n" +
		"- Include setup, learning, implementation, and review phases\n" +
		"- Every 7th day should be 'Review progress, consolidate learnings, and rest'\n" +
		"- Progress from basics to advanced concepts\n" +
		"- End with a deliverable or portfolio addition\n" +
		"- Be realistic about what can be done each day (2-3 hours of focused work)\n\n")
	fmt.Fprintf(&b, "Generate exactly %d days. Start now:", days)
	return b.String()
}
