package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/quantmind-br/configdoc/internal/manifest"
)

// Style selects how type and default values are spelled in the table
type Style string

const (
	// StyleLegacy matches tables written by the earlier doc script:
	// True/False/None and single-quoted lists.
	StyleLegacy Style = "legacy"
	// StyleJSON spells values as compact JSON literals
	StyleJSON Style = "json"
)

// ParseStyle validates a style name
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleLegacy:
		return StyleLegacy, nil
	case StyleJSON:
		return StyleJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (use legacy or json)", ErrUnknownStyle, s)
	}
}

// FormatValue renders v as plain text. Top-level strings are returned as is;
// strings nested in lists or maps are quoted.
func FormatValue(v *manifest.Value, style Style) string {
	if v != nil && v.Kind == manifest.KindString {
		return v.Text
	}
	var b strings.Builder
	if style == StyleJSON {
		writeJSON(&b, v)
	} else {
		writeLegacy(&b, v)
	}
	return b.String()
}

func writeJSON(b *strings.Builder, v *manifest.Value) {
	if v == nil {
		b.WriteString("null")
		return
	}
	switch v.Kind {
	case manifest.KindNull:
		b.WriteString("null")
	case manifest.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case manifest.KindNumber:
		b.WriteString(v.Text)
	case manifest.KindString:
		b.WriteString(jsonQuote(v.Text))
	case manifest.KindList:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case manifest.KindMap:
		b.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			field, _ := v.Get(key)
			b.WriteString(jsonQuote(key))
			b.WriteByte(':')
			writeJSON(b, field)
		}
		b.WriteByte('}')
	}
}

func writeLegacy(b *strings.Builder, v *manifest.Value) {
	if v == nil {
		b.WriteString("None")
		return
	}
	switch v.Kind {
	case manifest.KindNull:
		b.WriteString("None")
	case manifest.KindBool:
		if v.Bool {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case manifest.KindNumber:
		b.WriteString(legacyNumber(v.Text))
	case manifest.KindString:
		b.WriteString(legacyQuote(v.Text))
	case manifest.KindList:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLegacy(b, item)
		}
		b.WriteByte(']')
	case manifest.KindMap:
		b.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			field, _ := v.Get(key)
			b.WriteString(legacyQuote(key))
			b.WriteString(": ")
			writeLegacy(b, field)
		}
		b.WriteByte('}')
	}
}

// jsonQuote quotes s as a JSON string without HTML escaping
func jsonQuote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// legacyQuote single-quotes s, switching to double quotes when s holds a
// single quote and no double quote.
func legacyQuote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case !unicode.IsPrint(r):
			writeRuneEscape(&b, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// writeRuneEscape writes r as \xhh, \uhhhh or \Uhhhhhhhh, the shortest that fits
func writeRuneEscape(b *strings.Builder, r rune) {
	switch {
	case r < 0x100:
		fmt.Fprintf(b, `\x%02x`, r)
	case r < 0x10000:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}

// legacyNumber keeps integers as digits and prints decimals as the shortest
// float that round-trips, always with a fraction or exponent.
func legacyNumber(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		if n, ok := new(big.Int).SetString(literal, 10); ok {
			return n.String()
		}
		if n, err := strconv.ParseInt(literal, 0, 64); err == nil {
			return strconv.FormatInt(n, 10)
		}
		return literal
	}

	// Out of range literals come back as ±Inf with ErrRange
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return literal
	}
	return legacyFloat(f)
}

func legacyFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
