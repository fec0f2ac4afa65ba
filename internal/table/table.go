// Package table renders manifest configuration properties as a markdown table.
package table

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/configdoc/internal/manifest"
)

// Header and separator rows of the generated table
const (
	HeaderRow    = "| Property | Description | Type | Default Value |"
	SeparatorRow = "| - | - | - | - |"
)

// Row is one rendered table row
type Row struct {
	Name        string
	Description string
	Type        string
	Default     string
}

// String formats the row as a markdown table line without the trailing newline
func (r Row) String() string {
	return fmt.Sprintf("| %s | %s | %s | %s |",
		InlineCode(r.Name), r.Description, InlineCode(r.Type), InlineCode(r.Default))
}

// Options configures a Formatter
type Options struct {
	Style Style
}

// Formatter projects properties to table rows
type Formatter struct {
	style Style
}

// NewFormatter creates a formatter. An empty style means StyleLegacy.
func NewFormatter(opts Options) *Formatter {
	if opts.Style == "" {
		opts.Style = StyleLegacy
	}
	return &Formatter{style: opts.Style}
}

// Style returns the value style in use
func (f *Formatter) Style() Style {
	return f.style
}

// Render builds the whole table, one row per property in order. Every line,
// the last included, ends with a newline.
func (f *Formatter) Render(props []manifest.Property) (string, error) {
	var b strings.Builder
	b.WriteString(HeaderRow)
	b.WriteByte('\n')
	b.WriteString(SeparatorRow)
	b.WriteByte('\n')

	for _, p := range props {
		row, err := f.Row(p)
		if err != nil {
			return "", err
		}
		b.WriteString(row.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Row projects a single property
func (f *Formatter) Row(p manifest.Property) (Row, error) {
	desc, err := description(p)
	if err != nil {
		return Row{}, err
	}

	typ, ok := p.Type()
	if !ok {
		return Row{}, &MissingFieldError{Property: p.Name, Fields: []string{"type"}}
	}
	def, ok := p.Default()
	if !ok {
		return Row{}, &MissingFieldError{Property: p.Name, Fields: []string{"default"}}
	}

	return Row{
		Name:        p.Name,
		Description: desc,
		Type:        FormatValue(typ, f.style),
		Default:     FormatValue(def, f.style),
	}, nil
}

// description picks markdownDescription over description and keeps its first line
func description(p manifest.Property) (string, error) {
	field := "markdownDescription"
	v, ok := p.MarkdownDescription()
	if !ok {
		field = "description"
		v, ok = p.Description()
	}
	if !ok {
		return "", &MissingFieldError{Property: p.Name, Fields: []string{"markdownDescription", "description"}}
	}
	if v.Kind != manifest.KindString {
		return "", fmt.Errorf("property %q: %s is a %s, not a string: %w", p.Name, field, v.Kind, ErrInvalidField)
	}
	return FirstLine(v.Text), nil
}

// FirstLine returns s up to the first newline
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}

// InlineCode wraps s in a code span. The fence grows past any backtick run in
// s and pipes are escaped so the cell stays inside its column.
func InlineCode(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)

	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	if longest == 0 {
		return "`" + s + "`"
	}

	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}
