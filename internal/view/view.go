package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderList renders every section, one block per declaration
func RenderList(sections []Section) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Route segment config declarations") + "\n")

	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(renderHeading(s))
		b.WriteString("\n")
		b.WriteString(renderCandidates(s, nil))
	}

	return b.String()
}

// RenderSection renders a single declaration in detail.
// declarations holds the rendered source line of each candidate, in candidate order;
// a nil slice omits them.
func RenderSection(s Section, declarations []string) string {
	var b strings.Builder

	b.WriteString(renderHeading(s) + "\n")
	if s.Description != "" {
		b.WriteString("   " + keyStyle.Render("Description: ") + valueStyle.Render(s.Description) + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Value type: ") + valueStyle.Render(string(s.ValueType)) + "\n")
	if s.Disabled {
		b.WriteString("   " + warningStyle.Render("Disabled in configuration") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderCandidates(s, declarations))

	return b.String()
}

func renderHeading(s Section) string {
	heading := sectionStyle.Render("export const "+s.Identifier) + " " + subtleStyle.Render("("+string(s.ValueType)+")")
	if s.Disabled {
		heading += " " + errorStyle.Render("✗ disabled")
	}
	return heading
}

func renderCandidates(s Section, declarations []string) string {
	var b strings.Builder

	width := 0
	for _, c := range s.Candidates {
		width = max(width, len(c.Label))
	}

	for i, c := range s.Candidates {
		label := fmt.Sprintf("%-*s", width, c.Label)
		if c.IsDefault() {
			label = successStyle.Render(label)
		} else {
			label = valueStyle.Render(label)
		}

		line := "   " + label + "  " + keyStyle.Render(c.Detail)
		if c.Deprecated {
			line += " " + warningStyle.Render("[deprecated]")
		}
		b.WriteString(line + "\n")

		if i < len(declarations) {
			b.WriteString("     " + declarations[i] + "\n")
		}
	}

	return b.String()
}
