// Package timefmt converts timestamp text between formats. It backs the
// "timestamp" format descriptor of mapping rules.
//
// A format is either a named format (see Named) or a token picture such as
// "YYYY-MM-DD HH:mm:ss". Text inside square brackets is copied literally.
package timefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatter converts text from sourceHint (may be empty) to target.
type Formatter func(text, target, sourceHint string) (string, error)

// ErrUnsupported is returned for pictures that cannot be expressed as a layout.
var ErrUnsupported = errors.New("unsupported format")

// FormatError reports a failed conversion.
type FormatError struct {
	Text   string
	Format string
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot convert timestamp %q with format %q: %v", e.Text, e.Format, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

const (
	FormatISO8601 = "iso8601"
	FormatRFC3339 = "rfc3339"
	FormatRFC1123 = "rfc1123"
	FormatDate    = "date"
	FormatUnix    = "unix"
	FormatUnixMs  = "unixms"
)

// Named maps format names to Go layouts. Unix formats have no layout.
var Named = map[string]string{
	FormatISO8601: "2006-01-02T15:04:05.000Z07:00",
	FormatRFC3339: time.RFC3339,
	FormatRFC1123: time.RFC1123,
	FormatDate:    time.DateOnly,
	FormatUnix:    "",
	FormatUnixMs:  "",
}

// fallbackLayouts are tried in order when no source hint is given.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// Format parses text (using sourceHint when set) and renders it in target.
// Timestamps without a zone are read as UTC.
func Format(text, target, sourceHint string) (string, error) {
	t, err := Parse(text, sourceHint)
	if err != nil {
		return "", err
	}

	return Render(t, target)
}

// Parse reads text in the given format, or in any of the ISO family of
// layouts when format is empty.
func Parse(text, format string) (time.Time, error) {
	switch format {
	case FormatUnix, FormatUnixMs:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return time.Time{}, &FormatError{Text: text, Format: format, Err: err}
		}

		if format == FormatUnix {
			return time.Unix(n, 0).UTC(), nil
		}

		return time.UnixMilli(n).UTC(), nil

	case "":
		for _, layout := range fallbackLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, nil
			}
		}

		return time.Time{}, &FormatError{Text: text, Format: "auto", Err: errors.New("no known layout matches")}
	}

	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, &FormatError{Text: text, Format: format, Err: err}
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, &FormatError{Text: text, Format: format, Err: err}
	}

	return t, nil
}

// Render formats t in the given format.
func Render(t time.Time, format string) (string, error) {
	switch format {
	case FormatUnix:
		return strconv.FormatInt(t.Unix(), 10), nil
	case FormatUnixMs:
		return strconv.FormatInt(t.UnixMilli(), 10), nil
	}

	layout, err := Layout(format)
	if err != nil {
		return "", &FormatError{Text: t.String(), Format: format, Err: err}
	}

	return t.Format(layout), nil
}

// tokens are matched longest first at every position of a picture.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"SSS", "000"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"ZZ", "-0700"},
	{"M", "1"},
	{"D", "2"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"Z", "-07:00"},
	{"A", "PM"},
	{"a", "pm"},
}

var reservedWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

func reservedText(s string) bool {
	if strings.ContainsAny(s, "0123456789") {
		return true
	}

	for _, w := range reservedWords {
		if strings.Contains(s, w) {
			return true
		}
	}

	return false
}

// Layout returns the Go layout for a named format or token picture.
// Literal text, bracketed or not, may not contain digits or the words Go
// layouts reserve (Jan, Mon, MST, PM, pm).
func Layout(format string) (string, error) {
	if layout, ok := Named[format]; ok {
		if layout == "" {
			return "", fmt.Errorf("%w: %s has no layout", ErrUnsupported, format)
		}

		return layout, nil
	}

	if format == "" {
		return "", fmt.Errorf("%w: empty picture", ErrUnsupported)
	}

	var sb, text strings.Builder

	// flush copies pending literal text, refusing text Go would read as a
	// layout element.
	flush := func() error {
		if reservedText(text.String()) {
			return fmt.Errorf("%w: literal text %q in %q", ErrUnsupported, text.String(), format)
		}

		sb.WriteString(text.String())
		text.Reset()

		return nil
	}

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated literal in %q", ErrUnsupported, format)
			}

			text.WriteString(format[i+1 : i+end])
			i += end + 1

			continue
		}

		matched := false

		for _, tk := range tokens {
			if strings.HasPrefix(format[i:], tk.token) {
				if err := flush(); err != nil {
					return "", err
				}

				sb.WriteString(tk.layout)
				i += len(tk.token)
				matched = true

				break
			}
		}

		if !matched {
			text.WriteByte(format[i])
			i++
		}
	}

	if err := flush(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
