package output

import "strings"

// Default region markers
const (
	DefaultStartMarker = "<!-- START_CONFIG_TABLE -->"
	DefaultEndMarker   = "<!-- END_CONFIG_TABLE -->"
)

// Markers delimit the generated region of a document
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers returns the standard config table markers
func DefaultMarkers() Markers {
	return Markers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// Splice replaces everything between the first start marker and the next end
// marker with body. The markers and the text around them are kept; body is
// preceded by a blank line and followed by a newline.
func Splice(content string, markers Markers, body string) (string, error) {
	start := strings.Index(content, markers.Start)
	if start < 0 {
		return "", &MarkerNotFoundError{Marker: markers.Start}
	}
	start += len(markers.Start)

	end := strings.Index(content[start:], markers.End)
	if end < 0 {
		return "", &MarkerNotFoundError{
			Marker:     markers.End,
			AfterStart: strings.Contains(content, markers.End),
		}
	}
	end += start

	var b strings.Builder
	b.Grow(start + len(body) + len(content) - end + 3)
	b.WriteString(content[:start])
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(content[end:])
	return b.String(), nil
}

