package caption

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedCue = errors.New("malformed SRT cue")

// TimedLine pairs one rendered caption line with its natural duration in
// seconds (end minus start, before any time padding).
type TimedLine struct {
	Seconds float64
	Text    string
}

// ReprojectSRT recovers timed caption lines from SRT document text so an
// SSML document can be derived without the token-level transcript. Blank
// lines and pure-numeric cue index lines are dropped; each time-range line
// is paired with the line immediately following it. Only the first text line
// of a cue is captured, so multi-line cues lose their tail.
func ReprojectSRT(r io.Reader) ([]TimedLine, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || isNumeric(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read SRT input: %w", err)
	}

	var timed []TimedLine
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], "-->") {
			continue
		}

		fields := strings.Fields(lines[i])
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: time range %q", ErrMalformedTimeCode, lines[i])
		}
		start, err := ParseTimeCode(fields[0])
		if err != nil {
			return nil, err
		}
		end, err := ParseTimeCode(fields[2])
		if err != nil {
			return nil, err
		}

		if i+1 >= len(lines) || strings.Contains(lines[i+1], "-->") {
			return nil, fmt.Errorf("%w: time range %q has no text line", ErrMalformedCue, lines[i])
		}

		timed = append(timed, TimedLine{
			Seconds: end - start,
			Text:    lines[i+1],
		})
	}
	return timed, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
