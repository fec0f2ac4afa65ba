package output

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between the current and generated
// content of the document called name. It is empty when they are equal.
func UnifiedDiff(name, before, after string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (generated)",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}

// Colorize paints diff lines: additions green, removals red, hunk headers cyan.
func Colorize(diff string, enabled bool) string {
	if !enabled || diff == "" {
		return diff
	}

	header := color.New(color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)
	for _, c := range []*color.Color{header, added, removed, hunk} {
		c.EnableColor()
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		text, hasNewline := strings.CutSuffix(line, "\n")
		switch {
		case text == "":
			b.WriteString(line)
			continue
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			b.WriteString(header.Sprint(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(hunk.Sprint(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(added.Sprint(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(removed.Sprint(text))
		default:
			b.WriteString(text)
		}
		if hasNewline {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
