package caption

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// time code layout for a target format
type TimeStyle int

const (
	StyleSRT TimeStyle = iota // 00:MM:SS,mmm
	StyleVTT                  // 00:MM:SS.mmm
)

var ErrMalformedTimeCode = errors.New("malformed time code")

// FormatTimeCode converts a duration in seconds into the printable time code
// for the given style. The hour field is always written as 00 and minutes are
// not wrapped at 60: transcripts are assumed short-form, and an input past
// the hour mark renders with an oversized minute field (00:61:40,000) rather
// than rolling over into hours.
func FormatTimeCode(seconds float64, style TimeStyle) string {
	whole := int(seconds)
	millis := int((seconds - float64(whole)) * 1000)
	mins := whole / 60
	secs := whole % 60

	sep := ","
	if style == StyleVTT {
		sep = "."
	}
	return fmt.Sprintf("00:%02d:%02d%s%03d", mins, secs, sep, millis)
}

// ParseTimeCode converts a printable time code back into seconds. Both the
// SRT comma and the VTT dot millisecond separator are accepted, and a real
// hour field is honored even though FormatTimeCode never emits one.
func ParseTimeCode(text string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	parts := strings.Split(normalized, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeCode, text)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: bad hour field in %q", ErrMalformedTimeCode, text)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("%w: bad minute field in %q", ErrMalformedTimeCode, text)
	}
	secs, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%w: bad second field in %q", ErrMalformedTimeCode, text)
	}

	return float64(hours)*3600 + float64(mins)*60 + secs, nil
}

// QuantizeSeconds truncates a seconds value to the millisecond precision
// that survives a trip through the printable time code. Both SSML paths
// derive phrase durations from quantized values so that a document built
// from the transcript and one built from its SRT rendering agree exactly.
func QuantizeSeconds(seconds float64) float64 {
	v, err := ParseTimeCode(FormatTimeCode(seconds, StyleSRT))
	if err != nil {
		return seconds
	}
	return v
}
