package caption

import (
	"errors"
	"math"
	"testing"
)

func TestFormatTimeCode(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		style   TimeStyle
		want    string
	}{
		{"zero srt", 0, StyleSRT, "00:00:00,000"},
		{"zero vtt", 0, StyleVTT, "00:00:00.000"},
		{"fractional srt", 4.5, StyleSRT, "00:00:04,500"},
		{"fractional vtt", 4.5, StyleVTT, "00:00:04.500"},
		{"minutes", 61.25, StyleSRT, "00:01:01,250"},
		{"small fraction", 1.04, StyleSRT, "00:00:01,040"},
		// Minutes are deliberately not wrapped at 60; the hour field
		// stays constant.
		{"past the hour", 3700, StyleSRT, "00:61:40,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimeCode(tt.seconds, tt.style)
			if got != tt.want {
				t.Errorf(
					"FormatTimeCode(%v) = %q, want %q",
					tt.seconds,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestParseTimeCode(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"00:00:00,000", 0},
		{"00:00:04,500", 4.5},
		{"00:00:04.500", 4.5},
		{"01:00:01,500", 3601.5},
		{"00:61:40,000", 3700},
		{" 00:00:02,250 ", 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseTimeCode(tt.text)
			if err != nil {
				t.Fatalf("ParseTimeCode(%q) failed: %v", tt.text, err)
			}
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf(
					"ParseTimeCode(%q) = %v, want %v",
					tt.text,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestParseTimeCodeMalformed(t *testing.T) {
	tests := []string{
		"",
		"nonsense",
		"00:00",
		"00:00:00:00,000",
		"aa:00:00,000",
		"00:bb:00,000",
		"00:00:cc,000",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseTimeCode(text)
			if !errors.Is(err, ErrMalformedTimeCode) {
				t.Errorf(
					"ParseTimeCode(%q) err = %v, want ErrMalformedTimeCode",
					text,
					err,
				)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// parse(format(s)) must hold to millisecond precision for the whole
	// sub-hour range the format can represent.
	for s := 0.0; s < 3600; s += 13.37 {
		for _, style := range []TimeStyle{StyleSRT, StyleVTT} {
			got, err := ParseTimeCode(FormatTimeCode(s, style))
			if err != nil {
				t.Fatalf("round trip of %v failed: %v", s, err)
			}
			if math.Abs(got-s) > 0.001 {
				t.Errorf(
					"round trip of %v = %v, off by more than 1ms",
					s,
					got,
				)
			}
		}
	}
}

func TestQuantizeSeconds(t *testing.T) {
	got := QuantizeSeconds(1.0456)
	if got != 1.045 {
		t.Errorf("QuantizeSeconds(1.0456) = %v, want 1.045", got)
	}
	if QuantizeSeconds(2.5) != 2.5 {
		t.Errorf("QuantizeSeconds(2.5) = %v, want 2.5", QuantizeSeconds(2.5))
	}
}
