package caption

import (
	"fmt"
	"strings"
)

// WebVTT format
type VTTEmitter struct {
	// CueStyle is a positioning/style suffix appended after every cue's
	// time range, e.g. "align:middle line:90%". Empty means no suffix.
	CueStyle string
}

// serializes phrases as a WebVTT document with numbered cues
func (e VTTEmitter) Emit(phrases []Phrase) (string, error) {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, p := range phrases {
		// cue index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// time range: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s",
			FormatTimeCode(p.Start, StyleVTT),
			FormatTimeCode(p.End, StyleVTT)))
		if e.CueStyle != "" {
			sb.WriteByte(' ')
			sb.WriteString(e.CueStyle)
		}
		sb.WriteByte('\n')

		sb.WriteString(RenderText(p))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
