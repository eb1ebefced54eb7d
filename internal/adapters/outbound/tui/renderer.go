package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tunelint/tunelint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	passTagStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(fg)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a full validation run: banner, one block per file,
// then the global summary. maxDefects > 0 caps the defect lines printed per
// file; the counters always reflect the full totals.
func RenderReport(report *domain.RunReport, maxDefects int) string {
	var b strings.Builder

	title := headerStyle.Render("tunelint")
	subtitle := dimStyle.Render("Fine-Tuning Dataset Validator")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n")

	for _, fr := range report.Files {
		renderFile(&b, fr, maxDefects)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	renderSummary(&b, report.Summary)

	return b.String()
}

func renderFile(b *strings.Builder, fr *domain.FileReport, maxDefects int) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render("Validating:"), fileStyle.Render(fr.Path))
	b.WriteString("  " + separatorLine + "\n")

	for i, d := range fr.Defects {
		if maxDefects > 0 && i == maxDefects {
			fmt.Fprintf(b, "      %s\n", dimStyle.Render(fmt.Sprintf("… and %d more", len(fr.Defects)-i)))
			break
		}
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("✗"), dimStyle.Render(d.String()))
	}
	for _, h := range fr.Hints {
		fmt.Fprintf(b, "    %s %s\n", faintStyle.Render("·"), faintStyle.Render(h.String()))
	}

	if fr.Passed() {
		fmt.Fprintf(b, "  %s %s\n",
			passTagStyle.Render("PASS"),
			dimStyle.Render(fmt.Sprintf("%d lines valid", fr.LinesChecked)))
	} else {
		fmt.Fprintf(b, "  %s %s\n",
			failTagStyle.Render("FAIL"),
			dimStyle.Render(fmt.Sprintf("%d of %d lines failed", fr.LinesFailed, fr.LinesChecked)))
	}
}

func renderSummary(b *strings.Builder, s domain.RunSummary) {
	b.WriteString("  " + titleStyle.Render("Summary") + "\n\n")

	fmt.Fprintf(b, "    %s %d checked, %s, %s\n",
		dimStyle.Render("Files:"),
		s.FilesChecked,
		passStyle.Render(fmt.Sprintf("%d passed", s.FilesPassed)),
		failOrDim(s.FilesFailed, "%d failed"))
	fmt.Fprintf(b, "    %s %d checked, %s\n",
		dimStyle.Render("Lines:"),
		s.LinesChecked,
		failOrDim(s.LinesFailed, "%d failed"))
	b.WriteString("\n")

	if s.Passed() {
		b.WriteString("  " + passTagStyle.Render("✓ All files passed") + "\n")
	} else {
		b.WriteString("  " + failTagStyle.Render("✗ Validation failed") + "\n")
	}
}

func failOrDim(n int, format string) string {
	text := fmt.Sprintf(format, n)
	if n > 0 {
		return failStyle.Render(text)
	}
	return dimStyle.Render(text)
}

// RenderNoInputs formats the zero-files warning. Finding nothing to check is
// not a failure.
func RenderNoInputs(dataDir, ext string) string {
	return "  " + warnStyle.Render(fmt.Sprintf("No %s files found in %s, nothing to validate.", ext, dataDir)) + "\n"
}

// RenderHistory formats stored run entries for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		status := passStyle.Render("pass")
		if e.FilesFailed > 0 {
			status = failStyle.Render(fmt.Sprintf("%d/%d failed", e.LinesFailed, e.LinesChecked))
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			dimStyle.Render(fmt.Sprintf("%d files / %d lines", e.FilesChecked, e.LinesChecked)),
			status,
		)

		if i > 0 {
			diff := e.LinesFailed - entries[i-1].LinesFailed
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
