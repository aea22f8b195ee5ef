// Package format holds the display helpers shared by the screens.
package format

import (
	"strings"
	"time"
)

// hexLetters maps one hex digit to a display letter for doctor ids.
var hexLetters = [16]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K', 'L', 'M', 'N', 'P', 'Q', 'R'}

// ShortenID compresses a long identifier to its head and tail, uppercased.
func ShortenID(value string, length int) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range value {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) <= length {
		return strings.ToUpper(s)
	}
	head := s[:length/2]
	tail := s[len(s)-(length+1)/2:]
	return strings.ToUpper(head + tail)
}

// DoctorID renders a doctor's hex identifier as a human-friendly DR- code,
// one letter per trailing hex digit. Non-hex identifiers fall back to
// ShortenID.
func DoctorID(value string) string {
	const length = 8
	if value == "" {
		return ""
	}
	var hex strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') {
			hex.WriteRune(r)
		}
	}
	h := hex.String()
	if h == "" {
		return ShortenID(value, length)
	}
	if len(h) > length {
		h = h[len(h)-length:]
	}
	var out strings.Builder
	out.WriteString("DR-")
	for i := 0; i < len(h); i++ {
		out.WriteByte(hexLetters[hexDigit(h[i])])
	}
	return out.String()
}

// DateTime renders a timestamp the way the screens show schedule times.
func DateTime(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

// DateTimePtr renders an optional timestamp, with a placeholder when absent.
func DateTimePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return DateTime(*t)
}

// Date renders just the calendar day.
func Date(t time.Time) string {
	return t.Local().Format("Mon, Jan 2, 2006")
}

// TimeRange joins a start and end clock time, tolerating missing halves.
func TimeRange(start, end string) string {
	if start == "" && end == "" {
		return "—"
	}
	if end == "" {
		return start
	}
	if start == "" {
		return "until " + end
	}
	return start + " - " + end
}

// Initials derives up to two uppercase initials from a name.
func Initials(name string) string {
	parts := strings.Fields(name)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "PT"
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func hexDigit(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return int(c-'a') + 10
}
