// Package display renders verdicts for the CLI.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openjudge/arbiter/internal/judge"
)

var (
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// FormatVerdict renders a single response as a short human-readable block.
func FormatVerdict(resp judge.Response) string {
	var sb strings.Builder

	switch resp.Verdict {
	case judge.VerdictAccepted:
		sb.WriteString(acceptedStyle.Render("✓ accepted"))
	case judge.VerdictWrongAnswer:
		sb.WriteString(failedStyle.Render("✗ wrong answer"))
	case judge.VerdictRuntimeError:
		sb.WriteString(failedStyle.Render("✗ runtime error"))
	case judge.VerdictCompilationError:
		sb.WriteString(failedStyle.Render("✗ compilation error"))
	case judge.VerdictTimeout:
		sb.WriteString(warnStyle.Render("✗ timeout"))
	default:
		sb.WriteString(resp.Verdict)
	}

	if resp.FailedTestCaseIndex != nil {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  (test case %d)", *resp.FailedTestCaseIndex)))
	}
	if resp.ErrorMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(mutedStyle.Render(truncate(resp.ErrorMessage, 800)))
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
