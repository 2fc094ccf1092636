package caption

import (
	"fmt"
	"strings"
)

// SSML document with duration-bounded prosody elements, used to pace
// synthesized speech against the original phrase timing.
type SSMLEmitter struct {
	timePad float64
}

// NewSSMLEmitter creates an SSML emitter. timePad multiplies each phrase's
// natural duration before it is written as the max-duration bound; 1.0 keeps
// the original pacing.
func NewSSMLEmitter(timePad float64) (*SSMLEmitter, error) {
	if timePad <= 0 {
		return nil, fmt.Errorf("time pad factor must be positive, got %g", timePad)
	}
	return &SSMLEmitter{timePad: timePad}, nil
}

// serializes phrases as prosody elements inside a single speak element
func (e *SSMLEmitter) Emit(phrases []Phrase) (string, error) {
	var sb strings.Builder
	sb.WriteString("<speak>\n")
	for _, p := range phrases {
		// Quantizing through the time code keeps durations identical to
		// what an SRT rendering of the same phrases would reproject to.
		seconds := QuantizeSeconds(p.End) - QuantizeSeconds(p.Start)
		writeProsody(&sb, seconds*e.timePad, RenderText(p))
	}
	sb.WriteString("</speak>")
	return sb.String(), nil
}

// EmitLines serializes already-rendered caption lines recovered from an SRT
// document. The layout is identical to Emit; only the text source differs.
func (e *SSMLEmitter) EmitLines(lines []TimedLine) (string, error) {
	var sb strings.Builder
	sb.WriteString("<speak>\n")
	for _, line := range lines {
		writeProsody(&sb, line.Seconds*e.timePad, line.Text)
	}
	sb.WriteString("</speak>")
	return sb.String(), nil
}

func writeProsody(sb *strings.Builder, seconds float64, text string) {
	fmt.Fprintf(sb, "<prosody amazon:max-duration=\"%3.2f\">%s</prosody>\n", seconds, text)
}
